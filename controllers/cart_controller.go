package controllers

import (
	"errors"

	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc     *services.CartService
	Packs   *services.FoodPackService
	Reserve *services.ReservationService
}

func NewCartController(s *services.CartService, packs *services.FoodPackService, resv *services.ReservationService) *CartController {
	return &CartController{Svc: s, Packs: packs, Reserve: resv}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.State(utils.CurrentUID(c)))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		PackID       string `json:"packId" binding:"required"`
		Quantity     int    `json:"quantity"`
		Instructions string `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pack, err := h.Packs.Get(req.PackID)
	if err != nil {
		resp.NotFound(c, "pack not found")
		return
	}

	h.Svc.Add(utils.CurrentUID(c), pack, req.Quantity, req.Instructions)
	resp.Created(c, h.Svc.State(utils.CurrentUID(c)))
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var req struct {
		Key      string `json:"key" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUID(c)
	if !h.Svc.UpdateQuantity(uid, req.Key, req.Quantity) {
		resp.NotFound(c, "no such line in cart")
		return
	}
	resp.OK(c, h.Svc.State(uid))
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUID(c)
	if !h.Svc.Remove(uid, req.Key) {
		resp.NotFound(c, "no such line in cart")
		return
	}
	resp.OK(c, h.Svc.State(uid))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(utils.CurrentUID(c))
	resp.OK(c, gin.H{"cleared": true})
}

// DELETE /cart/restaurants/:key
func (h *CartController) ClearRestaurant(c *gin.Context) {
	uid := utils.CurrentUID(c)
	if !h.Svc.ClearRestaurant(uid, c.Param("key")) {
		resp.NotFound(c, "no such restaurant in cart")
		return
	}
	resp.OK(c, h.Svc.State(uid))
}

// POST /cart/checkout
// ไล่จองทีละ line: จองได้ก็เอาออกจากตะกร้า จองไม่ได้ (ของหมด) ปล่อยค้างไว้
// ให้ user ตัดสินใจเอง ตอบผลแยกราย line
func (h *CartController) Checkout(c *gin.Context) {
	uid := utils.CurrentUID(c)
	lines := h.Svc.Lines(uid)
	if len(lines) == 0 {
		resp.BadRequest(c, "cart is empty")
		return
	}

	type lineResult struct {
		Key           string `json:"key"`
		Reserved      bool   `json:"reserved"`
		ReservationID string `json:"reservationId,omitempty"`
		PickupCode    string `json:"pickupCode,omitempty"`
		Error         string `json:"error,omitempty"`
	}

	results := make([]lineResult, 0, len(lines))
	for _, line := range lines {
		resv, err := h.Reserve.Reserve(uid, &services.ReserveIn{
			PackID:              line.PackID,
			Quantity:            line.Quantity,
			SpecialInstructions: line.Instructions,
		})
		if err != nil {
			msg := err.Error()
			if errors.Is(err, services.ErrPackUnavailable) {
				msg = "pack no longer available"
			}
			results = append(results, lineResult{Key: line.Key, Error: msg})
			continue
		}
		h.Svc.Remove(uid, line.Key)
		results = append(results, lineResult{
			Key:           line.Key,
			Reserved:      true,
			ReservationID: resv.ReservationID,
			PickupCode:    resv.PickupCode,
		})
	}

	resp.OK(c, gin.H{"results": results, "cart": h.Svc.State(uid)})
}
