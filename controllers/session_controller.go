package controllers

import (
	"errors"

	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Svc *services.SessionService
}

func NewSessionController(s *services.SessionService) *SessionController {
	return &SessionController{Svc: s}
}

// GET /session/role?entry=customer|restaurant
// resolve ใหม่จาก store ทุกครั้ง แล้วตอบ role + หน้าถัดไป
func (h *SessionController) Resolve(c *gin.Context) {
	uid := utils.CurrentUID(c)
	role, err := h.Svc.Resolve(c.Request.Context(), uid, entryHint(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyUserID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"role":               role,
		"nextRoute":          services.NextRoute(role),
		"restaurantFeatures": services.CanAccessRestaurantFeatures(role),
		"customerFeatures":   services.CanAccessCustomerFeatures(role),
	})
}

// GET /session/current — อ่าน role ล่าสุดโดยไม่ resolve ใหม่
func (h *SessionController) Current(c *gin.Context) {
	uid := utils.CurrentUID(c)
	role, ok := h.Svc.Current(c.Request.Context(), uid)
	if !ok {
		resp.NotFound(c, "no resolved role for this session")
		return
	}
	resp.OK(c, gin.H{
		"role":      role,
		"nextRoute": services.NextRoute(role),
	})
}
