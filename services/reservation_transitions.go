// services/reservation_transitions.go
package services

import (
	"errors"
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid_or_conflict")
	ErrWrongPickupCode   = errors.New("wrong pickup code")
)

// ----- Vendor actions -----

// Ready: confirmed -> ready_for_pickup (ร้านแพ็คของเสร็จ)
func (s *ReservationService) Ready(vendorUID, reservationID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := s.Repo.FindByReservationID(reservationID); if err != nil { return ErrNotReservation }
		if r.VendorUID != vendorUID { return ErrForbidden }

		affected, err := s.Repo.UpdateStatusGuard(tx, r.ReservationID,
			[]string{entity.ReservationConfirmed}, entity.ReservationReady, nil)
		if err != nil { return err }
		if affected == 0 { return ErrInvalidTransition }

		if s.Feed != nil { s.Feed.Push(r.RestaurantID, "reservation.ready", r.ReservationID) }
		return nil
	})
}

// Complete: confirmed|ready -> completed ลูกค้ามารับของ ต้องโชว์ pickup code
// ถูกต้อง จ่ายเงินหน้าร้านตอนนี้เลย เลยติด paid ด้วย
func (s *ReservationService) Complete(vendorUID, reservationID, pickupCode string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := s.Repo.FindByReservationID(reservationID); if err != nil { return ErrNotReservation }
		if r.VendorUID != vendorUID { return ErrForbidden }
		if r.PickupCode != pickupCode { return ErrWrongPickupCode }

		now := time.Now()
		affected, err := s.Repo.UpdateStatusGuard(tx, r.ReservationID,
			[]string{entity.ReservationConfirmed, entity.ReservationReady},
			entity.ReservationCompleted,
			map[string]any{"completed_at": &now, "payment_status": entity.PaymentPaid})
		if err != nil { return err }
		if affected == 0 { return ErrInvalidTransition }
		return nil
	})
}

// NoShow: ready -> no_show ลูกค้าไม่มารับ
func (s *ReservationService) NoShow(vendorUID, reservationID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := s.Repo.FindByReservationID(reservationID); if err != nil { return ErrNotReservation }
		if r.VendorUID != vendorUID { return ErrForbidden }

		affected, err := s.Repo.UpdateStatusGuard(tx, r.ReservationID,
			[]string{entity.ReservationReady}, entity.ReservationNoShow, nil)
		if err != nil { return err }
		if affected == 0 { return ErrInvalidTransition }
		return nil
	})
}

// ----- Customer actions -----

// Cancel: confirmed -> canceled แล้วคืน stock ให้ pack
func (s *ReservationService) Cancel(customerUID, reservationID, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := s.Repo.FindByReservationID(reservationID); if err != nil { return ErrNotReservation }
		if r.CustomerUID != customerUID { return ErrForbidden }

		now := time.Now()
		affected, err := s.Repo.UpdateStatusGuard(tx, r.ReservationID,
			[]string{entity.ReservationConfirmed}, entity.ReservationCanceled,
			map[string]any{"canceled_at": &now, "cancel_reason": reason})
		if err != nil { return err }
		if affected == 0 { return ErrInvalidTransition }

		if err := s.PackRepo.RestoreQuantity(tx, r.PackID, r.Quantity); err != nil { return err }

		if s.Feed != nil { s.Feed.Push(r.RestaurantID, "reservation.canceled", r.ReservationID) }
		return nil
	})
}
