package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"plateful/entity"
	"plateful/repository"

	"github.com/lucsky/cuid"
)

var (
	ErrNoRestaurant = errors.New("no restaurant for this vendor")
	ErrNotPackOwner = errors.New("pack belongs to another vendor")
)

type FoodPackService struct {
	PackRepo *repository.FoodPackRepository
	RestRepo *repository.RestaurantRepository
}

func NewFoodPackService(pr *repository.FoodPackRepository, rr *repository.RestaurantRepository) *FoodPackService {
	return &FoodPackService{PackRepo: pr, RestRepo: rr}
}

type CreatePackIn struct {
	Name               string    `json:"name" binding:"required"`
	Description        string    `json:"description"`
	OriginalPrice      float64   `json:"originalPrice" binding:"required"`
	DiscountedPrice    float64   `json:"discountedPrice" binding:"required"`
	Quantity           int       `json:"quantity" binding:"required"`
	ExpiresAt          time.Time `json:"expiresAt" binding:"required"`
	CuisineType        string    `json:"cuisineType"`
	IsVegetarian       bool      `json:"isVegetarian"`
	IsVegan            bool      `json:"isVegan"`
	AllergyInfo        string    `json:"allergyInfo"`
	PackagingType      string    `json:"packagingType"`
	PickupInstructions string    `json:"pickupInstructions"`
	ImageURL           string    `json:"imageUrl"`
}

// validatePack กติกาตอนลงขาย: ราคาลดต้องถูกกว่าราคาเต็มจริง ๆ
// จำนวนอย่างน้อย 1 และต้องยังไม่เลยเวลาหมดอายุ
func validatePack(in *CreatePackIn, now time.Time) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if in.OriginalPrice <= 0 || in.DiscountedPrice <= 0 {
		return errors.New("prices must be positive")
	}
	if in.DiscountedPrice >= in.OriginalPrice {
		return errors.New("discounted price must be below original price")
	}
	if in.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if !in.ExpiresAt.After(now) {
		return errors.New("expiry must be in the future")
	}
	return nil
}

// Create ลงขาย pack ใหม่ใต้ร้านของ vendor คนนี้
func (s *FoodPackService) Create(vendorUID string, in *CreatePackIn) (*entity.FoodPack, error) {
	rest, err := s.RestRepo.FindByOwner(vendorUID)
	if err != nil {
		return nil, ErrNoRestaurant
	}
	if err := validatePack(in, time.Now()); err != nil {
		return nil, err
	}

	pack := &entity.FoodPack{
		PackID:             cuid.New(),
		RestaurantID:       rest.RestaurantID,
		RestaurantName:     rest.Name,
		VendorUID:          vendorUID,
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		OriginalPrice:      in.OriginalPrice,
		DiscountedPrice:    in.DiscountedPrice,
		Quantity:           in.Quantity,
		TotalQuantity:      in.Quantity,
		ExpiresAt:          in.ExpiresAt,
		CuisineType:        in.CuisineType,
		IsVegetarian:       in.IsVegetarian,
		IsVegan:            in.IsVegan,
		Status:             entity.PackAvailable,
		AllergyInfo:        in.AllergyInfo,
		PackagingType:      in.PackagingType,
		PickupInstructions: in.PickupInstructions,
		ImageURL:           in.ImageURL,
	}
	if err := s.PackRepo.Create(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *FoodPackService) Get(packID string) (*entity.FoodPack, error) {
	return s.PackRepo.FindByPackID(packID)
}

func (s *FoodPackService) Browse(f repository.PackFilter) ([]entity.FoodPack, error) {
	return s.PackRepo.ListAvailable(f)
}

func (s *FoodPackService) ListOwn(vendorUID string) ([]entity.FoodPack, error) {
	rest, err := s.RestRepo.FindByOwner(vendorUID)
	if err != nil {
		return nil, ErrNoRestaurant
	}
	return s.PackRepo.ListByRestaurant(rest.RestaurantID)
}

// Update แก้ฟิลด์ display ของ pack ตัวเอง (ราคากับ stock ไม่แก้ทางนี้)
func (s *FoodPackService) Update(vendorUID, packID string, updates map[string]any) (*entity.FoodPack, error) {
	pack, err := s.PackRepo.FindByPackID(packID)
	if err != nil {
		return nil, err
	}
	if pack.VendorUID != vendorUID {
		return nil, ErrNotPackOwner
	}
	if err := s.PackRepo.Update(packID, updates); err != nil {
		return nil, err
	}
	return s.PackRepo.FindByPackID(packID)
}

// Cancel ถอน pack ออกจากการขาย
func (s *FoodPackService) Cancel(vendorUID, packID string) error {
	pack, err := s.PackRepo.FindByPackID(packID)
	if err != nil {
		return err
	}
	if pack.VendorUID != vendorUID {
		return ErrNotPackOwner
	}
	return s.PackRepo.Update(packID, map[string]any{"status": entity.PackCanceled})
}

// ExpireSweep ติด expired ให้ pack ที่เลยเวลา เรียกจาก loop ใน main
func (s *FoodPackService) ExpireSweep() {
	n, err := s.PackRepo.MarkExpired(time.Now())
	if err != nil {
		log.Printf("expire sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("expire sweep: %d pack(s) expired", n)
	}
}
