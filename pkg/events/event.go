// Package events ส่ง event ของระบบออก message broker ให้ consumer ฝั่ง
// notification/analytics ใช้ต่อ โดยไม่ต้องกลับมา query DB หลัก
package events

// ReservationConfirmed ถูก publish ตอนลูกค้าจอง pack สำเร็จ
type ReservationConfirmed struct {
	ReservationID  string  `json:"reservation_id"`
	PackID         string  `json:"pack_id"`
	PackName       string  `json:"pack_name"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	VendorUID      string  `json:"vendor_id"`
	CustomerUID    string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	Quantity       int     `json:"quantity"`
	TotalPrice     float64 `json:"total_price"`
	PickupCode     string  `json:"pickup_code"`
	ReservedAt     string  `json:"reserved_at"`
}
