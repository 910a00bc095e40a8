package entity

import (
	"math"
	"testing"
)

func pack(restaurant, name string, original, discounted float64) *FoodPack {
	return &FoodPack{
		PackID:          "pk_" + CartKey(name),
		Name:            name,
		RestaurantName:  restaurant,
		OriginalPrice:   original,
		DiscountedPrice: discounted,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCartKeyNormalization(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Tibet Corner", "tibet_corner"},
		{"  Tibet Corner  ", "tibet_corner"},
		{"TIBET CORNER", "tibet_corner"},
		{"Veg Momos", "veg_momos"},
	}
	for _, c := range cases {
		if got := CartKey(c.in); got != c.want {
			t.Errorf("CartKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := LineKey("Tibet Corner", "Veg Momos"); got != "tibet_corner_veg_momos" {
		t.Errorf("LineKey = %q", got)
	}
}

// เพิ่มเมนูเดิมซ้ำ ต้องรวมเป็น line เดียวแล้วบวก qty
func TestCartMergeOnAdd(t *testing.T) {
	c := NewCart("u1")
	momos := pack("Tibet Corner", "Veg Momos", 80, 40)

	c.AddItem(momos, 1, "")
	c.AddItem(momos, 2, "")

	rc, ok := c.Restaurants["tibet_corner"]
	if !ok {
		t.Fatal("restaurant cart missing")
	}
	if len(rc.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(rc.Lines))
	}
	if rc.Lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", rc.Lines[0].Quantity)
	}
	if !almostEqual(rc.Subtotal(), 120) {
		t.Errorf("subtotal = %v, want 120", rc.Subtotal())
	}
	if !almostEqual(rc.Savings(), 120) {
		// (80-40) * 3
		t.Errorf("savings = %v, want 120", rc.Savings())
	}
}

// ชื่อร้าน/เมนูต่าง case กัน ต้องจบที่ line เดียวกัน
func TestCartMergeIgnoresCase(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 1, "")
	c.AddItem(pack("TIBET CORNER", "veg momos", 80, 40), 1, "")

	if len(c.Restaurants) != 1 {
		t.Fatalf("restaurants = %d, want 1", len(c.Restaurants))
	}
	if got := c.QuantityOf("VEG MOMOS"); got != 2 {
		t.Errorf("QuantityOf = %d, want 2", got)
	}
}

func TestCartAddDefaults(t *testing.T) {
	c := NewCart("u1")
	if c.AddItem(nil, 1, "") {
		t.Error("AddItem(nil) should fail")
	}
	// qty <= 0 ตอน add ตีเป็น 1
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 0, "")
	if got := c.QuantityOf("Veg Momos"); got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
	c.AddItem(pack("Tibet Corner", "Thukpa", 120, 60), -3, "no onion")
	if got := c.QuantityOf("Thukpa"); got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
}

func TestCartTotalsAcrossRestaurants(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 2, "")
	c.AddItem(pack("Spice Villa", "Biryani Box", 300, 150), 1, "")

	if got := c.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
	if !almostEqual(c.GrandTotal(), 230) {
		t.Errorf("GrandTotal = %v, want 230", c.GrandTotal())
	}
	// (80-40)*2 + (300-150)*1
	if !almostEqual(c.TotalSavings(), 230) {
		t.Errorf("TotalSavings = %v, want 230", c.TotalSavings())
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 2, "")
	key := LineKey("Tibet Corner", "Veg Momos")

	if !c.UpdateQuantity(key, 5) {
		t.Fatal("update failed")
	}
	if got := c.QuantityOf("Veg Momos"); got != 5 {
		t.Errorf("quantity = %d, want 5", got)
	}
	if c.UpdateQuantity("tibet_corner_nope", 2) {
		t.Error("update of unknown line should fail")
	}

	// qty <= 0 = ลบ line และร้านที่ว่างต้องหายไปด้วย
	if !c.UpdateQuantity(key, 0) {
		t.Fatal("update to zero failed")
	}
	if _, ok := c.Restaurants["tibet_corner"]; ok {
		t.Error("empty restaurant should be removed")
	}
	if !c.IsEmpty() {
		t.Error("cart should be empty")
	}
}

func TestCartRemoveLineKeepsSiblings(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 1, "")
	c.AddItem(pack("Tibet Corner", "Thukpa", 120, 60), 1, "")

	if !c.RemoveLine(LineKey("Tibet Corner", "Veg Momos")) {
		t.Fatal("remove failed")
	}
	rc, ok := c.Restaurants["tibet_corner"]
	if !ok {
		t.Fatal("restaurant should survive while it still has lines")
	}
	if len(rc.Lines) != 1 || rc.Lines[0].ItemName != "Thukpa" {
		t.Errorf("unexpected lines: %+v", rc.Lines)
	}
	if c.RemoveLine("tibet_corner_veg_momos") {
		t.Error("double remove should fail")
	}
}

func TestCartClearRestaurant(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 1, "")
	c.AddItem(pack("Spice Villa", "Biryani Box", 300, 150), 1, "")

	if !c.ClearRestaurant("tibet_corner") {
		t.Fatal("clear failed")
	}
	if c.ClearRestaurant("tibet_corner") {
		t.Error("second clear should fail")
	}
	if c.Contains("Veg Momos") {
		t.Error("cleared restaurant's items should be gone")
	}
	if !c.Contains("Biryani Box") {
		t.Error("other restaurant should be untouched")
	}

	c.Clear()
	if !c.IsEmpty() || c.TotalItems() != 0 {
		t.Error("Clear should empty the cart")
	}
}

// ราคา/instructions ของ line เดิมไม่เปลี่ยนตอน merge
func TestCartMergeKeepsOriginalLine(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(pack("Tibet Corner", "Veg Momos", 80, 40), 1, "extra chutney")

	p2 := pack("Tibet Corner", "Veg Momos", 90, 45)
	c.AddItem(p2, 1, "no chutney")

	l := c.Restaurants["tibet_corner"].Lines[0]
	if !almostEqual(l.DiscountedPrice, 40) {
		t.Errorf("price overwritten: %v", l.DiscountedPrice)
	}
	if l.Instructions != "extra chutney" {
		t.Errorf("instructions overwritten: %q", l.Instructions)
	}
}
