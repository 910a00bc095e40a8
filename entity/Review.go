package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	ReviewID     string `gorm:"uniqueIndex;not null" json:"reviewId"`
	PackID       string `gorm:"index;not null" json:"packId"`
	RestaurantID string `gorm:"index;not null" json:"restaurantId"`

	CustomerUID  string `gorm:"index;not null" json:"customerId"`
	CustomerName string `json:"customerName"`

	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `json:"comment"`
}
