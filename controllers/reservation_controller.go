package controllers

import (
	"errors"

	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: s}
}

// POST /reservations
func (h *ReservationController) Reserve(c *gin.Context) {
	var req services.ReserveIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resv, err := h.Svc.Reserve(utils.CurrentUID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrPackUnavailable) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, resv)
}

// GET /reservations
func (h *ReservationController) ListMine(c *gin.Context) {
	resvs, err := h.Svc.ListForCustomer(utils.CurrentUID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, resvs)
}

// GET /reservations/:id — ดูได้เฉพาะลูกค้าเจ้าของจองหรือร้าน
func (h *ReservationController) Detail(c *gin.Context) {
	resv, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "reservation not found")
		return
	}
	uid := utils.CurrentUID(c)
	if resv.CustomerUID != uid && resv.VendorUID != uid {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, resv)
}

// PATCH /reservations/:id/cancel
func (h *ReservationController) Cancel(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req) // reason ไม่บังคับ

	err := h.Svc.Cancel(utils.CurrentUID(c), c.Param("id"), req.Reason)
	if err != nil {
		transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"canceled": true})
}

// GET /partner/reservations
func (h *ReservationController) ListForVendor(c *gin.Context) {
	resvs, err := h.Svc.ListForVendor(utils.CurrentUID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, resvs)
}

// PATCH /partner/reservations/:id/ready
func (h *ReservationController) Ready(c *gin.Context) {
	if err := h.Svc.Ready(utils.CurrentUID(c), c.Param("id")); err != nil {
		transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"ready": true})
}

// PATCH /partner/reservations/:id/complete
func (h *ReservationController) Complete(c *gin.Context) {
	var req struct {
		PickupCode string `json:"pickupCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Complete(utils.CurrentUID(c), c.Param("id"), req.PickupCode); err != nil {
		transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"completed": true})
}

// PATCH /partner/reservations/:id/no-show
func (h *ReservationController) NoShow(c *gin.Context) {
	if err := h.Svc.NoShow(utils.CurrentUID(c), c.Param("id")); err != nil {
		transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"noShow": true})
}

// transitionError map error ของ state transition เป็น status code
func transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotReservation):
		resp.NotFound(c, "reservation not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrWrongPickupCode):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
