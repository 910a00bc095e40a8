package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite in-memory หนึ่งก้อนต่อหนึ่ง test
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Restaurant{}, &entity.FoodPack{}, &entity.Reservation{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func newReservationTestService(t *testing.T) (*ReservationService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewReservationService(db,
		repository.NewReservationRepository(db),
		repository.NewFoodPackRepository(db),
		repository.NewUserRepository(db),
		nil, nil)
	return svc, db
}

func seedReservationFixtures(t *testing.T, db *gorm.DB, quantity int) *entity.FoodPack {
	t.Helper()
	if err := db.Create(&entity.User{UID: "cust_1", Email: "cust@test.dev", Name: "Asha", IsProfileComplete: true}).Error; err != nil {
		t.Fatal(err)
	}
	pack := &entity.FoodPack{
		PackID:          "pk_momos",
		RestaurantID:    "rest_1",
		RestaurantName:  "Tibet Corner",
		VendorUID:       "vendor_1",
		Name:            "Veg Momos",
		OriginalPrice:   80,
		DiscountedPrice: 40,
		Quantity:        quantity,
		TotalQuantity:   quantity,
		ExpiresAt:       time.Now().Add(4 * time.Hour),
		Status:          entity.PackAvailable,
	}
	if err := db.Create(pack).Error; err != nil {
		t.Fatal(err)
	}
	return pack
}

func TestReserveDecrementsStock(t *testing.T) {
	svc, db := newReservationTestService(t)
	seedReservationFixtures(t, db, 5)

	resv, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if resv.Status != entity.ReservationConfirmed {
		t.Errorf("status = %q", resv.Status)
	}
	if resv.TotalPrice != 80 {
		t.Errorf("totalPrice = %v, want 80", resv.TotalPrice)
	}
	if resv.PickupCode == "" {
		t.Error("pickup code missing")
	}

	pack, err := svc.PackRepo.FindByPackID("pk_momos")
	if err != nil {
		t.Fatal(err)
	}
	if pack.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", pack.Quantity)
	}
}

func TestReserveInsufficientStock(t *testing.T) {
	svc, db := newReservationTestService(t)
	seedReservationFixtures(t, db, 1)

	if _, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 3}); !errors.Is(err, ErrPackUnavailable) {
		t.Errorf("err = %v, want ErrPackUnavailable", err)
	}

	// stock ต้องไม่ขยับเพราะ tx rollback
	pack, _ := svc.PackRepo.FindByPackID("pk_momos")
	if pack.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", pack.Quantity)
	}
}

// ตัดจนหมด -> pack ติด reserved จองอีกไม่ได้
func TestReserveLastUnit(t *testing.T) {
	svc, db := newReservationTestService(t)
	seedReservationFixtures(t, db, 2)

	if _, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	pack, _ := svc.PackRepo.FindByPackID("pk_momos")
	if pack.Status != entity.PackReserved {
		t.Errorf("status = %q, want reserved", pack.Status)
	}
	if _, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 1}); !errors.Is(err, ErrPackUnavailable) {
		t.Errorf("err = %v, want ErrPackUnavailable", err)
	}
}

func TestReserveExpiredPack(t *testing.T) {
	svc, db := newReservationTestService(t)
	pack := seedReservationFixtures(t, db, 5)
	db.Model(pack).Update("expires_at", time.Now().Add(-time.Minute))

	if _, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 1}); !errors.Is(err, ErrPackUnavailable) {
		t.Errorf("err = %v, want ErrPackUnavailable", err)
	}
}

func TestCancelRestoresStock(t *testing.T) {
	svc, db := newReservationTestService(t)
	seedReservationFixtures(t, db, 2)

	resv, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}

	// คนอื่น cancel ไม่ได้
	if err := svc.Cancel("someone_else", resv.ReservationID, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	if err := svc.Cancel("cust_1", resv.ReservationID, "changed my mind"); err != nil {
		t.Fatal(err)
	}

	got, _ := svc.Get(resv.ReservationID)
	if got.Status != entity.ReservationCanceled {
		t.Errorf("status = %q", got.Status)
	}
	if got.CancelReason != "changed my mind" {
		t.Errorf("cancelReason = %q", got.CancelReason)
	}

	pack, _ := svc.PackRepo.FindByPackID("pk_momos")
	if pack.Quantity != 2 || pack.Status != entity.PackAvailable {
		t.Errorf("pack = qty %d status %q, want 2 available", pack.Quantity, pack.Status)
	}

	// cancel ซ้ำโดนกันด้วย status guard
	if err := svc.Cancel("cust_1", resv.ReservationID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestVendorTransitions(t *testing.T) {
	svc, db := newReservationTestService(t)
	seedReservationFixtures(t, db, 5)

	resv, err := svc.Reserve("cust_1", &ReserveIn{PackID: "pk_momos", Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Ready("wrong_vendor", resv.ReservationID); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	if err := svc.NoShow("vendor_1", resv.ReservationID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("no_show from confirmed should be invalid, got %v", err)
	}

	if err := svc.Ready("vendor_1", resv.ReservationID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Ready("vendor_1", resv.ReservationID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double ready err = %v", err)
	}

	if err := svc.Complete("vendor_1", resv.ReservationID, "bad-code"); !errors.Is(err, ErrWrongPickupCode) {
		t.Errorf("err = %v, want ErrWrongPickupCode", err)
	}
	if err := svc.Complete("vendor_1", resv.ReservationID, resv.PickupCode); err != nil {
		t.Fatal(err)
	}

	got, _ := svc.Get(resv.ReservationID)
	if got.Status != entity.ReservationCompleted {
		t.Errorf("status = %q", got.Status)
	}
	if got.PaymentStatus != entity.PaymentPaid {
		t.Errorf("paymentStatus = %q", got.PaymentStatus)
	}
	if got.CompletedAt == nil {
		t.Error("completedAt not set")
	}

	// จบแล้ว cancel ไม่ได้อีก
	if err := svc.Cancel("cust_1", resv.ReservationID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel after complete err = %v", err)
	}
}
