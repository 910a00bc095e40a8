package services

import (
	"errors"
	"strings"
	"time"

	"plateful/entity"
	"plateful/repository"
	"plateful/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register สร้าง user ใหม่ ถ้า email ซ้ำจะ error
func (s *AuthService) Register(email, password, name, phone string) (*entity.User, error) {
	// trim และ normalize email
	email = strings.ToLower(strings.TrimSpace(email))

	// ตรวจซ้ำ email
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	// hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		UID:         uuid.NewString(),
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	// ออก token
	token, err := utils.GenerateToken(user.UID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile
func (s *AuthService) GetProfile(uid string) (*entity.User, error) {
	return s.userRepo.FindByUID(uid)
}

// UpdateProfile อัปเดตข้อมูลผู้ใช้ทีละ field
func (s *AuthService) UpdateProfile(uid string, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(uid, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByUID(uid)
}

// PersonalDetailsIn คือฟอร์ม personal details ที่ต้องกรอกก่อนใช้แอป
type PersonalDetailsIn struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Gender      string `json:"gender"`
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Locality    string `json:"locality"`
}

// CompleteProfile บันทึกฟอร์มแล้วติดธง is_profile_complete
// ธงนี้คือตัวตัดสินว่า NextRoute จะส่งไป personal_details อีกไหม
func (s *AuthService) CompleteProfile(uid string, in *PersonalDetailsIn) (*entity.User, error) {
	updates := map[string]any{
		"name":                strings.TrimSpace(in.Name),
		"phone_number":        strings.TrimSpace(in.PhoneNumber),
		"gender":              in.Gender,
		"house_number":        in.HouseNumber,
		"street":              in.Street,
		"city":                in.City,
		"state":               in.State,
		"pincode":             in.Pincode,
		"locality":            in.Locality,
		"is_profile_complete": true,
	}
	if err := s.userRepo.Update(uid, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByUID(uid)
}
