package repository

import (
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type FoodPackRepository struct {
	DB *gorm.DB
}

func NewFoodPackRepository(db *gorm.DB) *FoodPackRepository {
	return &FoodPackRepository{DB: db}
}

// PackFilter ใช้กรองหน้า browse ฝั่งลูกค้า
type PackFilter struct {
	RestaurantID string
	CuisineType  string
	Vegetarian   bool
	Vegan        bool
	MaxPrice     float64
	Query        string
}

func (r *FoodPackRepository) Create(pack *entity.FoodPack) error {
	return r.DB.Create(pack).Error
}

func (r *FoodPackRepository) FindByPackID(packID string) (*entity.FoodPack, error) {
	var pack entity.FoodPack
	if err := r.DB.Where("pack_id = ?", packID).First(&pack).Error; err != nil {
		return nil, err
	}
	return &pack, nil
}

func (r *FoodPackRepository) ListByRestaurant(restaurantID string) ([]entity.FoodPack, error) {
	var packs []entity.FoodPack
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id desc").Find(&packs).Error
	return packs, err
}

// ListAvailable คืนเฉพาะ pack ที่ยังจองได้ (status available + ยังไม่หมดอายุ)
func (r *FoodPackRepository) ListAvailable(f PackFilter) ([]entity.FoodPack, error) {
	q := r.DB.Where("status = ? AND expires_at > ?", entity.PackAvailable, time.Now())
	if f.RestaurantID != "" {
		q = q.Where("restaurant_id = ?", f.RestaurantID)
	}
	if f.CuisineType != "" {
		q = q.Where("cuisine_type = ?", f.CuisineType)
	}
	if f.Vegetarian {
		q = q.Where("is_vegetarian = ?", true)
	}
	if f.Vegan {
		q = q.Where("is_vegan = ?", true)
	}
	if f.MaxPrice > 0 {
		q = q.Where("discounted_price <= ?", f.MaxPrice)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name LIKE ? OR description LIKE ? OR restaurant_name LIKE ?", like, like, like)
	}

	var packs []entity.FoodPack
	err := q.Order("expires_at asc").Find(&packs).Error
	return packs, err
}

func (r *FoodPackRepository) Update(packID string, updates map[string]any) error {
	return r.DB.Model(&entity.FoodPack{}).Where("pack_id = ?", packID).Updates(updates).Error
}

// DecrementAvailable ตัด stock แบบ guard: สำเร็จเฉพาะตอน pack ยัง available
// และเหลือพอ คืนจำนวนแถวที่โดน update (0 = จองไม่ได้)
func (r *FoodPackRepository) DecrementAvailable(tx *gorm.DB, packID string, qty int) (int64, error) {
	res := tx.Exec(`
		UPDATE food_packs
		   SET quantity = quantity - ?
		 WHERE pack_id = ?
		   AND status = ?
		   AND expires_at > ?
		   AND quantity >= ?
	`, qty, packID, entity.PackAvailable, time.Now(), qty)
	if res.Error != nil {
		return 0, res.Error
	}
	// quantity เหลือ 0 -> ติด reserved กันโผล่หน้า browse
	if err := tx.Model(&entity.FoodPack{}).
		Where("pack_id = ? AND quantity = 0 AND status = ?", packID, entity.PackAvailable).
		Update("status", entity.PackReserved).Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// RestoreQuantity คืน stock ตอนลูกค้ายกเลิก และปลด reserved ถ้ายังไม่หมดอายุ
func (r *FoodPackRepository) RestoreQuantity(tx *gorm.DB, packID string, qty int) error {
	if err := tx.Exec(`
		UPDATE food_packs SET quantity = quantity + ? WHERE pack_id = ?
	`, qty, packID).Error; err != nil {
		return err
	}
	return tx.Model(&entity.FoodPack{}).
		Where("pack_id = ? AND status = ? AND expires_at > ?", packID, entity.PackReserved, time.Now()).
		Update("status", entity.PackAvailable).Error
}

// MarkExpired กวาด pack ที่เลยเวลาแล้วให้เป็น expired
func (r *FoodPackRepository) MarkExpired(now time.Time) (int64, error) {
	res := r.DB.Model(&entity.FoodPack{}).
		Where("expires_at <= ? AND status IN ?", now, []string{entity.PackAvailable, entity.PackReserved}).
		Update("status", entity.PackExpired)
	return res.RowsAffected, res.Error
}

func (r *FoodPackRepository) CountActive(restaurantID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.FoodPack{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, entity.PackAvailable).
		Count(&count).Error
	return count, err
}
