package entity

import "strings"

// ตะกร้าเป็น state ใน memory ต่อ user อย่างเดียว ไม่ migrate ลง DB
// แยกเป็นร้าน ๆ (RestaurantCart) แล้วค่อยรวมยอดตอน query

// CartKey normalize ชื่อร้านเป็น key: ช่องว่าง -> underscore, lowercase
func CartKey(restaurantName string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(restaurantName), " ", "_"))
}

// LineKey = key ร้าน + ชื่อเมนู normalize แล้ว ใช้ชี้ line เดียวในตะกร้า
func LineKey(restaurantName, itemName string) string {
	return CartKey(restaurantName) + "_" + CartKey(itemName)
}

type CartLine struct {
	Key             string  `json:"key"`
	PackID          string  `json:"packId"`
	ItemName        string  `json:"itemName"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Quantity        int     `json:"quantity"`
	Instructions    string  `json:"instructions"`
}

func (l CartLine) Total() float64 {
	return l.DiscountedPrice * float64(l.Quantity)
}

func (l CartLine) OriginalTotal() float64 {
	return l.OriginalPrice * float64(l.Quantity)
}

func (l CartLine) Savings() float64 {
	return l.OriginalTotal() - l.Total()
}

type RestaurantCart struct {
	RestaurantKey  string     `json:"restaurantKey"`
	RestaurantName string     `json:"restaurantName"`
	Lines          []CartLine `json:"lines"`
}

func (rc *RestaurantCart) Subtotal() float64 {
	var sum float64
	for _, l := range rc.Lines {
		sum += l.Total()
	}
	return sum
}

func (rc *RestaurantCart) Savings() float64 {
	var sum float64
	for _, l := range rc.Lines {
		sum += l.Savings()
	}
	return sum
}

func (rc *RestaurantCart) TotalItems() int {
	var n int
	for _, l := range rc.Lines {
		n += l.Quantity
	}
	return n
}

// Cart ของ user หนึ่งคน: map จาก restaurant key -> ตะกร้าของร้านนั้น
type Cart struct {
	UserID      string
	Restaurants map[string]*RestaurantCart
}

func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Restaurants: make(map[string]*RestaurantCart)}
}

// AddItem เพิ่ม pack ลงตะกร้า ถ้ามี line เดิมอยู่แล้วจะบวก qty เฉย ๆ
// (ราคา/instructions ของ line เดิมไม่ถูกเขียนทับ)
func (c *Cart) AddItem(p *FoodPack, qty int, instructions string) bool {
	if p == nil {
		return false
	}
	if qty <= 0 {
		qty = 1
	}

	key := CartKey(p.RestaurantName)
	rc, ok := c.Restaurants[key]
	if !ok {
		// ชื่อร้าน copy มา ณ ตอนนี้ ไม่ sync ตามทีหลัง
		rc = &RestaurantCart{RestaurantKey: key, RestaurantName: p.RestaurantName}
		c.Restaurants[key] = rc
	}

	lineKey := LineKey(p.RestaurantName, p.Name)
	for i := range rc.Lines {
		if rc.Lines[i].Key == lineKey {
			rc.Lines[i].Quantity += qty
			return true
		}
	}

	rc.Lines = append(rc.Lines, CartLine{
		Key:             lineKey,
		PackID:          p.PackID,
		ItemName:        p.Name,
		OriginalPrice:   p.OriginalPrice,
		DiscountedPrice: p.DiscountedPrice,
		Quantity:        qty,
		Instructions:    instructions,
	})
	return true
}

// RemoveLine หา line จากทุกร้าน ลบทิ้ง และถ้าร้านว่างแล้วก็ลบร้านออกจาก map ทันที
func (c *Cart) RemoveLine(lineKey string) bool {
	for key, rc := range c.Restaurants {
		for i, l := range rc.Lines {
			if l.Key != lineKey {
				continue
			}
			rc.Lines = append(rc.Lines[:i], rc.Lines[i+1:]...)
			if len(rc.Lines) == 0 {
				delete(c.Restaurants, key)
			}
			return true
		}
	}
	return false
}

// UpdateQuantity: qty <= 0 ถือว่าลบ line
func (c *Cart) UpdateQuantity(lineKey string, qty int) bool {
	if qty <= 0 {
		return c.RemoveLine(lineKey)
	}
	for _, rc := range c.Restaurants {
		for i := range rc.Lines {
			if rc.Lines[i].Key == lineKey {
				rc.Lines[i].Quantity = qty
				return true
			}
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Restaurants = make(map[string]*RestaurantCart)
}

func (c *Cart) ClearRestaurant(restaurantKey string) bool {
	if _, ok := c.Restaurants[restaurantKey]; !ok {
		return false
	}
	delete(c.Restaurants, restaurantKey)
	return true
}

func (c *Cart) TotalItems() int {
	var n int
	for _, rc := range c.Restaurants {
		n += rc.TotalItems()
	}
	return n
}

func (c *Cart) GrandTotal() float64 {
	var sum float64
	for _, rc := range c.Restaurants {
		sum += rc.Subtotal()
	}
	return sum
}

func (c *Cart) TotalSavings() float64 {
	var sum float64
	for _, rc := range c.Restaurants {
		sum += rc.Savings()
	}
	return sum
}

// Contains เช็คว่ามีเมนูชื่อนี้อยู่ในตะกร้าไหม (เทียบแบบ normalize)
func (c *Cart) Contains(itemName string) bool {
	return c.QuantityOf(itemName) > 0
}

// QuantityOf รวม qty ของเมนูชื่อนี้จากทุกร้าน
func (c *Cart) QuantityOf(itemName string) int {
	want := CartKey(itemName)
	var n int
	for _, rc := range c.Restaurants {
		for _, l := range rc.Lines {
			if CartKey(l.ItemName) == want {
				n += l.Quantity
			}
		}
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Restaurants) == 0
}
