package entity

// UserType บอกว่า session นี้เป็นลูกค้าหรือเจ้าของร้าน
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeOwner    UserType = "owner"
)

// EntryType คือช่องทางที่ user เข้าแอป ใช้เป็น hint ตอน resolve role
type EntryType string

const (
	EntryCustomer   EntryType = "customer_entry"
	EntryRestaurant EntryType = "restaurant_entry"
)

// RouteToken คือหน้าถัดไปที่ client ควรแสดง
type RouteToken string

const (
	RoutePersonalDetails      RouteToken = "personal_details"
	RouteRestaurantDashboard  RouteToken = "restaurant_dashboard"
	RouteRestaurantOnboarding RouteToken = "restaurant_onboarding"
	RouteCustomerMain         RouteToken = "customer_main"
)

// Role เป็นค่า derived คำนวณใหม่ทุกครั้งที่ resolve ไม่เก็บลงตาราง
type Role struct {
	UserType        UserType  `json:"userType"`
	EntryType       EntryType `json:"entryType"`
	RestaurantID    string    `json:"restaurantId"`
	ProfileComplete bool      `json:"profileComplete"`
}
