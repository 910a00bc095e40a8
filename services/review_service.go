package services

import (
	"errors"
	"strings"

	"plateful/entity"
	"plateful/repository"

	"github.com/lucsky/cuid"
)

var (
	ErrNotEligible   = errors.New("no completed reservation for this pack")
	ErrInvalidRating = errors.New("rating must be 1-5")
)

type ReviewService struct {
	RevRepo  *repository.ReviewRepository
	PackRepo *repository.FoodPackRepository
	ResvRepo *repository.ReservationRepository
	UserRepo *repository.UserRepository
}

func NewReviewService(rev *repository.ReviewRepository, pack *repository.FoodPackRepository,
	resv *repository.ReservationRepository, user *repository.UserRepository) *ReviewService {
	return &ReviewService{RevRepo: rev, PackRepo: pack, ResvRepo: resv, UserRepo: user}
}

type AddReviewIn struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Add รีวิวได้เฉพาะคนที่รับ pack นั้นไปแล้วจริง ๆ
func (s *ReviewService) Add(customerUID, packID string, in *AddReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	pack, err := s.PackRepo.FindByPackID(packID)
	if err != nil {
		return nil, err
	}

	ok, err := s.ResvRepo.HasCompleted(customerUID, packID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotEligible
	}

	user, err := s.UserRepo.FindByUID(customerUID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ReviewID:     cuid.New(),
		PackID:       pack.PackID,
		RestaurantID: pack.RestaurantID,
		CustomerUID:  customerUID,
		CustomerName: user.Name,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
	}
	if err := s.RevRepo.Create(review); err != nil {
		return nil, err
	}

	// rolling average ไม่ต้องกลับไป scan รีวิวทั้งหมด
	newCount := pack.ReviewCount + 1
	newRating := (pack.Rating*float64(pack.ReviewCount) + float64(in.Rating)) / float64(newCount)
	if err := s.PackRepo.Update(pack.PackID, map[string]any{
		"rating":       newRating,
		"review_count": newCount,
	}); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) ListForPack(packID string) ([]entity.Review, error) {
	return s.RevRepo.ListByPack(packID)
}

func (s *ReviewService) ListForRestaurant(restaurantID string) ([]entity.Review, error) {
	return s.RevRepo.ListByRestaurant(restaurantID)
}
