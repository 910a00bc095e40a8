package controllers

import (
	"strings"

	"plateful/entity"
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc     *services.AuthService
	Session *services.SessionService
}

func NewAuthController(s *services.AuthService, sess *services.SessionService) *AuthController {
	return &AuthController{Svc: s, Session: sess}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.Name, req.PhoneNumber)
	if err != nil {
		if strings.Contains(err.Error(), "already registered") {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	// login แล้ว resolve role เลย client จะได้รู้ทันทีว่าไปหน้าไหนต่อ
	role, _ := h.Session.Resolve(c.Request.Context(), user.UID, "")
	resp.OK(c, gin.H{
		"token":     token,
		"user":      user,
		"role":      role,
		"nextRoute": services.NextRoute(role),
	})
}

// POST /auth/logout
func (h *AuthController) Logout(c *gin.Context) {
	uid := utils.CurrentUID(c)
	h.Session.EndSession(c.Request.Context(), uid)
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me — แก้ทีละ field รับเฉพาะ field ที่อนุญาต
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		PhoneNumber *string `json:"phoneNumber"`
		Gender      *string `json:"gender"`
		ProfileURL  *string `json:"profileUrl"`
		City        *string `json:"city"`
		Locality    *string `json:"locality"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.ProfileURL != nil {
		updates["profile_url"] = *req.ProfileURL
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Locality != nil {
		updates["locality"] = *req.Locality
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := h.Svc.UpdateProfile(utils.CurrentUID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /auth/me/profile — ฟอร์ม personal details ติดธง profile complete
func (h *AuthController) CompleteProfile(c *gin.Context) {
	var req services.PersonalDetailsIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUID(c)
	user, err := h.Svc.CompleteProfile(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// ธงเพิ่งเปลี่ยน resolve ใหม่ให้ route ถัดไปถูก
	role, _ := h.Session.Resolve(c.Request.Context(), uid, "")
	resp.OK(c, gin.H{
		"user":      user,
		"role":      role,
		"nextRoute": services.NextRoute(role),
	})
}

// entryHint แปลง ?entry= เป็น EntryType ("" = ไม่มี hint)
func entryHint(c *gin.Context) entity.EntryType {
	switch c.Query("entry") {
	case "customer":
		return entity.EntryCustomer
	case "restaurant":
		return entity.EntryRestaurant
	default:
		return ""
	}
}
