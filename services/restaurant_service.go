package services

import (
	"errors"
	"strings"

	"plateful/entity"
	"plateful/repository"

	"github.com/lucsky/cuid"
	"gorm.io/gorm"
)

var ErrAlreadyOwner = errors.New("user already owns a restaurant")

type RestaurantService struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	PackRepo *repository.FoodPackRepository
	ResvRepo *repository.ReservationRepository
	RevRepo  *repository.ReviewRepository
}

func NewRestaurantService(db *gorm.DB, rr *repository.RestaurantRepository, ur *repository.UserRepository,
	pr *repository.FoodPackRepository, resv *repository.ReservationRepository, rev *repository.ReviewRepository) *RestaurantService {
	return &RestaurantService{DB: db, RestRepo: rr, UserRepo: ur, PackRepo: pr, ResvRepo: resv, RevRepo: rev}
}

type OnboardIn struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PhoneNumber  string  `json:"phoneNumber" binding:"required"`
	Email        string  `json:"email"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CuisineTypes string  `json:"cuisineTypes"`
	ImageURL     string  `json:"imageUrl"`
}

// Onboard เปิดร้านให้ user: สร้าง record ร้าน + promote role เป็น owner
// ใน transaction เดียว หนึ่งคนเปิดได้ร้านเดียว
func (s *RestaurantService) Onboard(ownerUID string, in *OnboardIn) (*entity.Restaurant, error) {
	if _, err := s.UserRepo.FindByUID(ownerUID); err != nil {
		return nil, errors.New("user not found")
	}

	if existing, err := s.RestRepo.FindByOwner(ownerUID); err == nil && existing != nil {
		return nil, ErrAlreadyOwner
	}

	rest := &entity.Restaurant{
		RestaurantID: cuid.New(),
		OwnerUID:     ownerUID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		CuisineTypes: in.CuisineTypes,
		ImageURL:     in.ImageURL,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.RestRepo.Create(tx, rest); err != nil {
			return err
		}
		return s.UserRepo.SetRole(tx, ownerUID, "owner")
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Get(restaurantID string) (*entity.Restaurant, error) {
	return s.RestRepo.FindByRestaurantID(restaurantID)
}

func (s *RestaurantService) GetByOwner(ownerUID string) (*entity.Restaurant, error) {
	return s.RestRepo.FindByOwner(ownerUID)
}

func (s *RestaurantService) List(limit, offset int) ([]entity.Restaurant, error) {
	return s.RestRepo.List(limit, offset)
}

// UpdateOwn แก้ข้อมูลร้านตัวเอง (หา record จาก owner ไม่รับ id จากข้างนอก)
func (s *RestaurantService) UpdateOwn(ownerUID string, updates map[string]any) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByOwner(ownerUID)
	if err != nil {
		return nil, err
	}
	if err := s.RestRepo.Update(rest.RestaurantID, updates); err != nil {
		return nil, err
	}
	return s.RestRepo.FindByRestaurantID(rest.RestaurantID)
}

// DashboardOut คือ analytics รวมของ vendor หนึ่งราย
type DashboardOut struct {
	Restaurant    *entity.Restaurant `json:"restaurant"`
	TotalSales    float64            `json:"totalSales"`
	TotalOrders   int64              `json:"totalOrders"`
	PacksSold     int64              `json:"packsSold"`
	FoodSavedKg   float64            `json:"foodSavedKg"`
	ActivePacks   int64              `json:"activePacks"`
	AverageRating float64            `json:"averageRating"`
}

// น้ำหนักกลม ๆ ต่อ pack ใช้ประเมินอาหารที่ไม่ถูกทิ้ง
const estimatedKgPerPack = 0.5

func (s *RestaurantService) Dashboard(ownerUID string) (*DashboardOut, error) {
	rest, err := s.RestRepo.FindByOwner(ownerUID)
	if err != nil {
		return nil, err
	}

	sales, orders, sold, err := s.ResvRepo.VendorTotals(ownerUID)
	if err != nil {
		return nil, err
	}
	active, err := s.PackRepo.CountActive(rest.RestaurantID)
	if err != nil {
		return nil, err
	}
	avg, err := s.RevRepo.AverageForRestaurant(rest.RestaurantID)
	if err != nil {
		return nil, err
	}

	return &DashboardOut{
		Restaurant:    rest,
		TotalSales:    sales,
		TotalOrders:   orders,
		PacksSold:     sold,
		FoodSavedKg:   float64(sold) * estimatedKgPerPack,
		ActivePacks:   active,
		AverageRating: avg,
	}, nil
}
