package controllers

import (
	"errors"
	"strconv"

	"plateful/entity"
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	Session *services.SessionService
}

func NewRestaurantController(s *services.RestaurantService, sess *services.SessionService) *RestaurantController {
	return &RestaurantController{Svc: s, Session: sess}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rests, err := h.Svc.List(limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	rest, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants — onboarding เปิดร้าน
func (h *RestaurantController) Onboard(c *gin.Context) {
	var req services.OnboardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUID(c)
	rest, err := h.Svc.Onboard(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyOwner) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	// เพิ่งกลายเป็นเจ้าของร้าน role เปลี่ยนแล้ว resolve ใหม่เลย
	role, _ := h.Session.Resolve(c.Request.Context(), uid, entity.EntryRestaurant)
	resp.Created(c, gin.H{
		"restaurant": rest,
		"role":       role,
		"nextRoute":  services.NextRoute(role),
	})
}

// PATCH /partner/restaurant
func (h *RestaurantController) UpdateOwn(c *gin.Context) {
	var req struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		PhoneNumber  *string `json:"phoneNumber"`
		Address      *string `json:"address"`
		CuisineTypes *string `json:"cuisineTypes"`
		ImageURL     *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CuisineTypes != nil {
		updates["cuisine_types"] = *req.CuisineTypes
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	rest, err := h.Svc.UpdateOwn(utils.CurrentUID(c), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "no restaurant for this user")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /partner/restaurant/dashboard
func (h *RestaurantController) Dashboard(c *gin.Context) {
	out, err := h.Svc.Dashboard(utils.CurrentUID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "no restaurant for this user")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
