package services

import (
	"context"
	"errors"
	"log"
	"time"

	"plateful/entity"
	"plateful/pkg/events"
	"plateful/repository"

	"github.com/lucsky/cuid"
	"gorm.io/gorm"
)

var (
	ErrPackUnavailable = errors.New("pack unavailable or not enough quantity")
	ErrNotReservation  = errors.New("reservation not found")
)

// ownerFeed คือช่องทาง push สด ๆ ไปหา dashboard ของร้าน (ws hub)
type ownerFeed interface {
	Push(restaurantID, event string, payload any)
}

type ReservationService struct {
	DB       *gorm.DB
	Repo     *repository.ReservationRepository
	PackRepo *repository.FoodPackRepository
	UserRepo *repository.UserRepository
	Events   *events.Publisher
	Feed     ownerFeed
}

func NewReservationService(db *gorm.DB, rr *repository.ReservationRepository, pr *repository.FoodPackRepository,
	ur *repository.UserRepository, pub *events.Publisher, feed ownerFeed) *ReservationService {
	return &ReservationService{DB: db, Repo: rr, PackRepo: pr, UserRepo: ur, Events: pub, Feed: feed}
}

type ReserveIn struct {
	PackID              string `json:"packId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Reserve จอง pack: ตัด stock แบบ guard แล้วสร้าง reservation ใน tx เดียว
// ยอดไม่พอ/หมดอายุ -> ErrPackUnavailable (ให้ controller ตอบ 409)
func (s *ReservationService) Reserve(customerUID string, in *ReserveIn) (*entity.Reservation, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	user, err := s.UserRepo.FindByUID(customerUID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	pack, err := s.PackRepo.FindByPackID(in.PackID)
	if err != nil {
		return nil, ErrPackUnavailable
	}

	resv := &entity.Reservation{
		ReservationID:       cuid.New(),
		PackID:              pack.PackID,
		PackName:            pack.Name,
		RestaurantID:        pack.RestaurantID,
		VendorUID:           pack.VendorUID,
		CustomerUID:         customerUID,
		CustomerName:        user.Name,
		CustomerPhone:       user.PhoneNumber,
		Quantity:            in.Quantity,
		TotalPrice:          pack.DiscountedPrice * float64(in.Quantity),
		Status:              entity.ReservationConfirmed,
		PaymentStatus:       entity.PaymentPending,
		PickupCode:          cuid.Slug(),
		PickupTime:          pack.ExpiresAt, // รับได้ถึงเวลาหมดอายุของ pack
		SpecialInstructions: in.SpecialInstructions,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.PackRepo.DecrementAvailable(tx, pack.PackID, in.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrPackUnavailable
		}
		return s.Repo.Create(tx, resv)
	})
	if err != nil {
		return nil, err
	}

	s.notifyConfirmed(resv, pack)
	return resv, nil
}

// notifyConfirmed แจ้ง broker + ws feed หลัง commit แล้ว พลาดได้แค่ log
func (s *ReservationService) notifyConfirmed(resv *entity.Reservation, pack *entity.FoodPack) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ev := events.ReservationConfirmed{
		ReservationID:  resv.ReservationID,
		PackID:         resv.PackID,
		PackName:       resv.PackName,
		RestaurantID:   resv.RestaurantID,
		RestaurantName: pack.RestaurantName,
		VendorUID:      resv.VendorUID,
		CustomerUID:    resv.CustomerUID,
		CustomerName:   resv.CustomerName,
		Quantity:       resv.Quantity,
		TotalPrice:     resv.TotalPrice,
		PickupCode:     resv.PickupCode,
		ReservedAt:     time.Now().Format(time.RFC3339),
	}
	if err := s.Events.PublishReservationConfirmed(ctx, ev); err != nil {
		log.Printf("publish reservation.confirmed failed: %v", err)
	}
	if s.Feed != nil {
		s.Feed.Push(resv.RestaurantID, "reservation.confirmed", resv)
	}
}

func (s *ReservationService) Get(reservationID string) (*entity.Reservation, error) {
	return s.Repo.FindByReservationID(reservationID)
}

func (s *ReservationService) ListForCustomer(customerUID string) ([]entity.Reservation, error) {
	return s.Repo.ListByCustomer(customerUID)
}

func (s *ReservationService) ListForVendor(vendorUID string) ([]entity.Reservation, error) {
	return s.Repo.ListByVendor(vendorUID)
}
