package repository

import (
	"context"

	"plateful/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// GetByUID เวอร์ชันรับ ctx — ใช้ใน path ของ role resolution
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUID(uid string) (*entity.User, error) {
	return r.GetByUID(context.Background(), uid)
}

// หาผู้ใช้จาก email
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// นับจำนวน user ที่มี email ซ้ำ
func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// สร้าง user ใหม่
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// อัปเดต user ตาม uid
func (r *UserRepository) Update(uid string, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("uid = ?", uid).Updates(updates).Error
}

// SetRole ใช้ตอน promote เป็นเจ้าของร้านหลัง onboarding
func (r *UserRepository) SetRole(tx *gorm.DB, uid string, role string) error {
	return tx.Model(&entity.User{}).Where("uid = ?", uid).Update("role", role).Error
}
