package entity

import (
	"time"

	"gorm.io/gorm"
)

// สถานะ reservation
const (
	ReservationConfirmed = "confirmed"
	ReservationReady     = "ready_for_pickup"
	ReservationCompleted = "completed"
	ReservationCanceled  = "canceled"
	ReservationNoShow    = "no_show"
)

// สถานะจ่ายเงิน (จ่ายหน้าร้านตอนรับของ)
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
	PaymentFailed   = "failed"
)

// Reservation คือการจอง pack ของลูกค้า รอไปรับที่ร้าน
type Reservation struct {
	gorm.Model
	ReservationID string `gorm:"uniqueIndex;not null" json:"reservationId"`
	PackID        string `gorm:"index;not null" json:"packId"`
	PackName      string `json:"packName"`
	RestaurantID  string `gorm:"index;not null" json:"restaurantId"`
	VendorUID     string `gorm:"index;not null" json:"vendorId"`

	CustomerUID   string `gorm:"index;not null" json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Quantity   int     `gorm:"not null" json:"quantity"`
	TotalPrice float64 `gorm:"not null" json:"totalPrice"`

	Status        string `gorm:"not null;default:confirmed" json:"status"`
	PaymentStatus string `gorm:"not null;default:pending" json:"paymentStatus"`

	// โค้ดให้ลูกค้าโชว์ตอนมารับ
	PickupCode string `gorm:"index;not null" json:"pickupCode"`
	PickupTime time.Time `json:"pickupTime"`

	CompletedAt  *time.Time `json:"completedAt"`
	CanceledAt   *time.Time `json:"canceledAt"`
	CancelReason string     `json:"cancelReason"`

	SpecialInstructions string `json:"specialInstructions"`
}
