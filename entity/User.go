package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UID      string `gorm:"uniqueIndex;not null" json:"uid"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // ปลอดภัย

	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	ProfileURL  string `json:"profileUrl"`

	// ที่อยู่ (กรอกตอน personal details)
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Locality    string `json:"locality"`

	IsProfileComplete bool   `gorm:"not null;default:false" json:"isProfileComplete"`
	Role              string `gorm:"not null;default:customer" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	Restaurant   *Restaurant   `gorm:"foreignKey:OwnerUID;references:UID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:CustomerUID;references:UID" json:"-"`
	Reviews      []Review      `gorm:"foreignKey:CustomerUID;references:UID" json:"-"`
}
