package repository

import (
	"context"

	"plateful/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GetByOwner หา record ความเป็นเจ้าของร้านของ uid นี้
// คาดว่ามีได้มากสุดหนึ่งแถว (unique index ที่ owner_uid) — ใช้ใน role resolution
func (r *RestaurantRepository) GetByOwner(ctx context.Context, ownerUID string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).Where("owner_uid = ?", ownerUID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerUID string) (*entity.Restaurant, error) {
	return r.GetByOwner(context.Background(), ownerUID)
}

func (r *RestaurantRepository) FindByRestaurantID(restaurantID string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("restaurant_id = ?", restaurantID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) List(limit, offset int) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	q := r.DB.Order("id desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rests).Error; err != nil {
		return nil, err
	}
	return rests, nil
}

func (r *RestaurantRepository) Update(restaurantID string, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("restaurant_id = ?", restaurantID).Updates(updates).Error
}
