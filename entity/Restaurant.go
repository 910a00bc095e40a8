package entity

import (
	"gorm.io/gorm"
)

// Restaurant คือ record ความเป็นเจ้าของร้าน: OwnerUID หนึ่งคนมีได้ร้านเดียว
type Restaurant struct {
	gorm.Model
	RestaurantID string `gorm:"uniqueIndex;not null" json:"restaurantId"`
	OwnerUID     string `gorm:"uniqueIndex;not null" json:"ownerId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// comma separated เช่น "north_indian,chinese"
	CuisineTypes string `json:"cuisineTypes"`
	ImageURL     string `json:"imageUrl"`

	FoodPacks []FoodPack `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
}
