package services

import (
	"testing"

	"plateful/entity"
)

func momos() *entity.FoodPack {
	return &entity.FoodPack{
		PackID:          "pk_momos",
		Name:            "Veg Momos",
		RestaurantName:  "Tibet Corner",
		OriginalPrice:   80,
		DiscountedPrice: 40,
	}
}

func biryani() *entity.FoodPack {
	return &entity.FoodPack{
		PackID:          "pk_biryani",
		Name:            "Biryani Box",
		RestaurantName:  "Spice Villa",
		OriginalPrice:   300,
		DiscountedPrice: 150,
	}
}

// ตะกร้าแยกต่อ user เด็ดขาด
func TestCartServiceUserIsolation(t *testing.T) {
	svc := NewCartService()

	svc.Add("u1", momos(), 2, "")
	svc.Add("u2", biryani(), 1, "")

	s1 := svc.State("u1")
	if s1.TotalItems != 2 || s1.Subtotal != 80 {
		t.Errorf("u1 state = %+v", s1)
	}
	s2 := svc.State("u2")
	if s2.TotalItems != 1 || s2.Subtotal != 150 {
		t.Errorf("u2 state = %+v", s2)
	}

	svc.Clear("u1")
	if got := svc.State("u1").TotalItems; got != 0 {
		t.Errorf("u1 items after clear = %d", got)
	}
	if got := svc.State("u2").TotalItems; got != 1 {
		t.Errorf("u2 affected by u1's clear: %d items", got)
	}
}

func TestCartServiceState(t *testing.T) {
	svc := NewCartService()
	svc.Add("u1", momos(), 2, "")
	svc.Add("u1", biryani(), 1, "")

	st := svc.State("u1")
	if len(st.Restaurants) != 2 {
		t.Fatalf("restaurants = %d, want 2", len(st.Restaurants))
	}
	if st.Subtotal != 230 {
		t.Errorf("subtotal = %v, want 230", st.Subtotal)
	}
	if st.TotalSavings != 230 {
		t.Errorf("savings = %v, want 230", st.TotalSavings)
	}
	if st.TotalItems != 3 {
		t.Errorf("items = %d, want 3", st.TotalItems)
	}

	// state เป็น snapshot แก้ข้างนอกแล้วของจริงต้องไม่ขยับ
	st.Restaurants[0].Lines[0].Quantity = 99
	if got := svc.State("u1").TotalItems; got != 3 {
		t.Errorf("internal cart mutated through snapshot: %d items", got)
	}

	// user ใหม่ได้ state เปล่า ไม่ error
	empty := svc.State("ghost")
	if empty.TotalItems != 0 || len(empty.Restaurants) != 0 {
		t.Errorf("empty state = %+v", empty)
	}
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	svc := NewCartService()
	svc.Add("u1", momos(), 1, "")
	key := entity.LineKey("Tibet Corner", "Veg Momos")

	if !svc.UpdateQuantity("u1", key, 4) {
		t.Fatal("update failed")
	}
	if got := svc.State("u1").TotalItems; got != 4 {
		t.Errorf("items = %d, want 4", got)
	}

	if !svc.Remove("u1", key) {
		t.Fatal("remove failed")
	}
	if svc.Remove("u1", key) {
		t.Error("second remove should fail")
	}
	if got := len(svc.Lines("u1")); got != 0 {
		t.Errorf("lines after remove = %d", got)
	}
}
