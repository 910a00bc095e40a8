package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(tx *gorm.DB, resv *entity.Reservation) error {
	return tx.Create(resv).Error
}

func (r *ReservationRepository) FindByReservationID(reservationID string) (*entity.Reservation, error) {
	var resv entity.Reservation
	if err := r.DB.Where("reservation_id = ?", reservationID).First(&resv).Error; err != nil {
		return nil, err
	}
	return &resv, nil
}

func (r *ReservationRepository) ListByCustomer(customerUID string) ([]entity.Reservation, error) {
	var resvs []entity.Reservation
	err := r.DB.Where("customer_uid = ?", customerUID).Order("id desc").Find(&resvs).Error
	return resvs, err
}

func (r *ReservationRepository) ListByVendor(vendorUID string) ([]entity.Reservation, error) {
	var resvs []entity.Reservation
	err := r.DB.Where("vendor_uid = ?", vendorUID).Order("id desc").Find(&resvs).Error
	return resvs, err
}

// UpdateStatusGuard เปลี่ยนสถานะเฉพาะตอนสถานะเดิมอยู่ใน from
// คืนจำนวนแถว (0 = transition ไม่ valid หรือโดนแข่ง)
func (r *ReservationRepository) UpdateStatusGuard(tx *gorm.DB, reservationID string, from []string, to string, extra map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Reservation{}).
		Where("reservation_id = ? AND status IN ?", reservationID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// HasCompleted เช็คว่าลูกค้าเคยรับ pack นี้จริง (ใช้ gate การรีวิว)
func (r *ReservationRepository) HasCompleted(customerUID, packID string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Reservation{}).
		Where("customer_uid = ? AND pack_id = ? AND status = ?", customerUID, packID, entity.ReservationCompleted).
		Count(&count).Error
	return count > 0, err
}

// VendorTotals รวมยอดขายฝั่ง vendor จาก reservation ที่จบแล้ว
func (r *ReservationRepository) VendorTotals(vendorUID string) (sales float64, orders int64, packsSold int64, err error) {
	row := r.DB.Model(&entity.Reservation{}).
		Select("COALESCE(SUM(total_price),0), COUNT(*), COALESCE(SUM(quantity),0)").
		Where("vendor_uid = ? AND status = ?", vendorUID, entity.ReservationCompleted).
		Row()
	err = row.Scan(&sales, &orders, &packsSold)
	return
}
