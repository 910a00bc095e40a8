package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ListByPack(packID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("pack_id = ?", packID).Order("id desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListByRestaurant(restaurantID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) AverageForRestaurant(restaurantID string) (float64, error) {
	var avg float64
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating),0)").
		Where("restaurant_id = ?", restaurantID).
		Row().Scan(&avg)
	return avg, err
}
