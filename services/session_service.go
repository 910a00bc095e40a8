package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"plateful/entity"
	"plateful/pkg/rolecache"
)

var ErrEmptyUserID = errors.New("empty user id")

// สอง store ที่ใช้ resolve role — repo จริงคือ UserRepository กับ
// RestaurantRepository, ฝั่ง test เสียบ fake ได้
type userStore interface {
	GetByUID(ctx context.Context, uid string) (*entity.User, error)
}

type ownershipStore interface {
	GetByOwner(ctx context.Context, uid string) (*entity.Restaurant, error)
}

// Session เก็บ role ล่าสุดของ user หนึ่งคน แทน field global แบบ singleton
// (หลาย session อยู่พร้อมกันได้ ไม่เหยียบกัน)
type Session struct {
	UID string

	mu      sync.Mutex
	current *entity.Role
}

func (s *Session) set(role entity.Role) {
	s.mu.Lock()
	s.current = &role
	s.mu.Unlock()
}

// CurrentRole คืน role ที่ resolve ไว้ล่าสุด (nil ถ้ายังไม่เคย resolve)
func (s *Session) CurrentRole() *entity.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// SessionService ตัดสินว่า user เป็น customer หรือเจ้าของร้าน
// แล้ว map เป็นหน้าถัดไปให้ client
type SessionService struct {
	users  userStore
	owners ownershipStore
	cache  *rolecache.Cache

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionService(users userStore, owners ownershipStore, cache *rolecache.Cache) *SessionService {
	return &SessionService{
		users:    users,
		owners:   owners,
		cache:    cache,
		sessions: make(map[string]*Session),
	}
}

// Session get-or-create session ของ uid นี้
func (s *SessionService) Session(uid string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[uid]; ok {
		return sess
	}
	sess := &Session{UID: uid}
	s.sessions[uid] = sess
	return sess
}

// EndSession ทิ้ง state ของ session ตอน logout
func (s *SessionService) EndSession(ctx context.Context, uid string) {
	s.mu.Lock()
	delete(s.sessions, uid)
	s.mu.Unlock()
	s.cache.Drop(ctx, uid)
}

// Resolve หา role ปัจจุบันของ uid
//
// นโยบาย fail-open: store อ่านพลาด (network/DB) ถือว่า "ไม่เจอ record"
// แล้ว degrade ไปเป็น customer/profile ยังไม่ครบ ไม่โยน error ออกไป
// เพราะ routing ปลายทางต้องได้คำตอบเสมอ มี error เดียวคือ uid ว่าง
// ซึ่งเช็คก่อนยิง I/O ใด ๆ
func (s *SessionService) Resolve(ctx context.Context, uid string, hint entity.EntryType) (entity.Role, error) {
	if strings.TrimSpace(uid) == "" {
		return entity.Role{}, ErrEmptyUserID
	}

	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		user = nil
	}
	rest, err := s.owners.GetByOwner(ctx, uid)
	if err != nil {
		rest = nil
	}

	var role entity.Role
	switch {
	case user != nil && rest != nil:
		role = entity.Role{
			UserType:        entity.UserTypeOwner,
			EntryType:       orEntry(hint, entity.EntryRestaurant),
			RestaurantID:    rest.RestaurantID,
			ProfileComplete: user.IsProfileComplete,
		}
	case user != nil:
		role = entity.Role{
			UserType:        entity.UserTypeCustomer,
			EntryType:       orEntry(hint, entity.EntryCustomer),
			ProfileComplete: user.IsProfileComplete,
		}
	default:
		// ยังไม่ลงทะเบียน: ถือเป็น customer ที่ profile ยังไม่ครบ
		// เดี๋ยว flow ลงทะเบียนตามมาเอง
		role = entity.Role{
			UserType:  entity.UserTypeCustomer,
			EntryType: orEntry(hint, entity.EntryCustomer),
		}
	}

	s.Session(uid).set(role)
	s.cache.Save(ctx, uid, role)
	return role, nil
}

// Current คืน role ล่าสุดโดยไม่ resolve ใหม่: ดูใน session ก่อน
// ถ้า session เย็น (เพิ่งเปิด process) ลอง shadow copy ใน redis
func (s *SessionService) Current(ctx context.Context, uid string) (entity.Role, bool) {
	if role := s.Session(uid).CurrentRole(); role != nil {
		return *role, true
	}
	return s.cache.Load(ctx, uid)
}

// HasRestaurantProfile เช็คว่า uid นี้มีร้านไหม (fail-open เป็น false)
func (s *SessionService) HasRestaurantProfile(ctx context.Context, uid string) bool {
	rest, err := s.owners.GetByOwner(ctx, uid)
	return err == nil && rest != nil
}

// RestaurantIDForOwner คืน "" ถ้าไม่มีร้านหรืออ่านพลาด
func (s *SessionService) RestaurantIDForOwner(ctx context.Context, uid string) string {
	rest, err := s.owners.GetByOwner(ctx, uid)
	if err != nil || rest == nil {
		return ""
	}
	return rest.RestaurantID
}

func orEntry(hint, fallback entity.EntryType) entity.EntryType {
	if hint != "" {
		return hint
	}
	return fallback
}

// NextRoute map role -> หน้าถัดไป เช็คตามลำดับ อันแรกที่เข้าเงื่อนไขชนะ:
// profile ไม่ครบมาก่อนทุกอย่าง, เจ้าของร้านที่ยังไม่มีร้านไป onboarding
func NextRoute(role entity.Role) entity.RouteToken {
	switch {
	case !role.ProfileComplete:
		return entity.RoutePersonalDetails
	case role.UserType == entity.UserTypeOwner && role.RestaurantID != "":
		return entity.RouteRestaurantDashboard
	case role.UserType == entity.UserTypeOwner:
		return entity.RouteRestaurantOnboarding
	default:
		return entity.RouteCustomerMain
	}
}

func CanAccessRestaurantFeatures(role entity.Role) bool {
	return role.UserType == entity.UserTypeOwner
}

func CanAccessCustomerFeatures(role entity.Role) bool {
	return role.UserType == entity.UserTypeCustomer
}
