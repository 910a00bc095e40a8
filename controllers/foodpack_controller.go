package controllers

import (
	"errors"
	"strconv"

	"plateful/pkg/resp"
	"plateful/repository"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodPackController struct {
	Svc *services.FoodPackService
}

func NewFoodPackController(s *services.FoodPackService) *FoodPackController {
	return &FoodPackController{Svc: s}
}

// GET /packs — browse ฝั่งลูกค้า กรองจาก query ได้
func (h *FoodPackController) Browse(c *gin.Context) {
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)
	filter := repository.PackFilter{
		RestaurantID: c.Query("restaurantId"),
		CuisineType:  c.Query("cuisine"),
		Vegetarian:   c.Query("veg") == "true",
		Vegan:        c.Query("vegan") == "true",
		MaxPrice:     maxPrice,
		Query:        c.Query("q"),
	}

	packs, err := h.Svc.Browse(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, packs)
}

// GET /packs/:id
func (h *FoodPackController) Detail(c *gin.Context) {
	pack, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "pack not found")
		return
	}
	resp.OK(c, pack)
}

// GET /partner/packs
func (h *FoodPackController) ListOwn(c *gin.Context) {
	packs, err := h.Svc.ListOwn(utils.CurrentUID(c))
	if err != nil {
		if errors.Is(err, services.ErrNoRestaurant) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, packs)
}

// POST /partner/packs
func (h *FoodPackController) Create(c *gin.Context) {
	var req services.CreatePackIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pack, err := h.Svc.Create(utils.CurrentUID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrNoRestaurant) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, pack)
}

// PATCH /partner/packs/:id
func (h *FoodPackController) Update(c *gin.Context) {
	var req struct {
		Name               *string `json:"name"`
		Description        *string `json:"description"`
		AllergyInfo        *string `json:"allergyInfo"`
		PackagingType      *string `json:"packagingType"`
		PickupInstructions *string `json:"pickupInstructions"`
		ImageURL           *string `json:"imageUrl"`
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
	if req.AllergyInfo != nil {
		updates["allergy_info"] = *req.AllergyInfo
	}
	if req.PackagingType != nil {
		updates["packaging_type"] = *req.PackagingType
	}
	if req.PickupInstructions != nil {
		updates["pickup_instructions"] = *req.PickupInstructions
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	pack, err := h.Svc.Update(utils.CurrentUID(c), c.Param("id"), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPackOwner):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "pack not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, pack)
}

// DELETE /partner/packs/:id — ถอนจากการขาย
func (h *FoodPackController) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(utils.CurrentUID(c), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrNotPackOwner):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "pack not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"canceled": true})
}
