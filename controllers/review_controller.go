package controllers

import (
	"errors"

	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /packs/:id/reviews
func (h *ReviewController) Add(c *gin.Context) {
	var req services.AddReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Add(utils.CurrentUID(c), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotEligible):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "pack not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, review)
}

// GET /packs/:id/reviews
func (h *ReviewController) ListForPack(c *gin.Context) {
	reviews, err := h.Svc.ListForPack(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /restaurants/:id/reviews
func (h *ReviewController) ListForRestaurant(c *gin.Context) {
	reviews, err := h.Svc.ListForRestaurant(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}
