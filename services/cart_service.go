package services

import (
	"sync"

	"plateful/entity"
)

// CartService เก็บตะกร้า in-memory แยกต่อ user หนึ่ง process ถือทุก
// session เลยต้องมี lock ที่ map แต่ใน session เดียวกัน operation มาเรียง
// ตามลำดับอยู่แล้ว ตะกร้าหายตอน restart ซึ่งตั้งใจ (ไม่ persist)
type CartService struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*entity.Cart)}
}

// CartState คือ snapshot ให้ controller เอาไปตอบ ไม่แชร์ pointer
// กับ state ข้างใน
type CartState struct {
	Restaurants  []entity.RestaurantCart `json:"restaurants"`
	Subtotal     float64                 `json:"subtotal"`
	TotalSavings float64                 `json:"totalSavings"`
	TotalItems   int                     `json:"totalItems"`
}

func (s *CartService) cart(uid string) *entity.Cart {
	if c, ok := s.carts[uid]; ok {
		return c
	}
	c := entity.NewCart(uid)
	s.carts[uid] = c
	return c
}

func (s *CartService) Add(uid string, pack *entity.FoodPack, qty int, instructions string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(uid).AddItem(pack, qty, instructions)
}

func (s *CartService) UpdateQuantity(uid, lineKey string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(uid).UpdateQuantity(lineKey, qty)
}

func (s *CartService) Remove(uid, lineKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(uid).RemoveLine(lineKey)
}

func (s *CartService) Clear(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, uid)
}

func (s *CartService) ClearRestaurant(uid, restaurantKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(uid).ClearRestaurant(restaurantKey)
}

// Lines คืน line ทั้งหมดแบบ copy ใช้ตอน checkout
func (s *CartService) Lines(uid string) []entity.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[uid]
	if !ok {
		return nil
	}
	var lines []entity.CartLine
	for _, rc := range c.Restaurants {
		lines = append(lines, rc.Lines...)
	}
	return lines
}

// State สรุปตะกร้าทั้งใบ: ต่อร้าน + ยอดรวม + ยอดประหยัด
func (s *CartService) State(uid string) CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := CartState{Restaurants: []entity.RestaurantCart{}}
	c, ok := s.carts[uid]
	if !ok {
		return out
	}
	for _, rc := range c.Restaurants {
		cp := entity.RestaurantCart{
			RestaurantKey:  rc.RestaurantKey,
			RestaurantName: rc.RestaurantName,
			Lines:          append([]entity.CartLine(nil), rc.Lines...),
		}
		out.Restaurants = append(out.Restaurants, cp)
	}
	out.Subtotal = c.GrandTotal()
	out.TotalSavings = c.TotalSavings()
	out.TotalItems = c.TotalItems()
	return out
}
