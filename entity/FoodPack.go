package entity

import (
	"time"

	"gorm.io/gorm"
)

// สถานะของ food pack
const (
	PackAvailable = "available"
	PackReserved  = "reserved" // quantity หมดแต่ยังไม่ถึงเวลา expire
	PackCompleted = "completed"
	PackExpired   = "expired"
	PackCanceled  = "canceled"
)

// FoodPack คืออาหารเหลือที่ร้านเอามาลงขายราคาลด
type FoodPack struct {
	gorm.Model
	PackID       string `gorm:"uniqueIndex;not null" json:"packId"`
	RestaurantID string `gorm:"index;not null" json:"restaurantId"`
	// ชื่อร้าน denormalize มาไว้ให้ฝั่ง browse/cart ใช้เลย
	RestaurantName string `json:"restaurantName"`
	VendorUID      string `gorm:"index;not null" json:"vendorId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	OriginalPrice   float64 `gorm:"not null" json:"originalPrice"`
	DiscountedPrice float64 `gorm:"not null" json:"discountedPrice"`

	Quantity      int `gorm:"not null" json:"quantity"`
	TotalQuantity int `gorm:"not null" json:"totalQuantity"`

	ExpiresAt time.Time `gorm:"index;not null" json:"expiresAt"`

	CuisineType  string `json:"cuisineType"`
	IsVegetarian bool   `json:"isVegetarian"`
	IsVegan      bool   `json:"isVegan"`

	Status string `gorm:"not null;default:available" json:"status"`

	AllergyInfo        string `json:"allergyInfo"`
	PackagingType      string `json:"packagingType"`
	PickupInstructions string `json:"pickupInstructions"`
	ImageURL           string `json:"imageUrl"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}
