package services

import (
	"context"
	"errors"
	"testing"

	"plateful/entity"
)

// fake store สองตัวสำหรับ resolve role โดยไม่แตะ DB จริง
type fakeUsers struct {
	users map[string]*entity.User
	err   error
	calls int
}

func (f *fakeUsers) GetByUID(_ context.Context, uid string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[uid]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

type fakeOwners struct {
	restaurants map[string]*entity.Restaurant
	err         error
	calls       int
}

func (f *fakeOwners) GetByOwner(_ context.Context, uid string) (*entity.Restaurant, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.restaurants[uid]
	if !ok {
		return nil, errors.New("record not found")
	}
	return r, nil
}

func newTestService(users *fakeUsers, owners *fakeOwners) *SessionService {
	if users == nil {
		users = &fakeUsers{users: map[string]*entity.User{}}
	}
	if owners == nil {
		owners = &fakeOwners{restaurants: map[string]*entity.Restaurant{}}
	}
	// cache = nil — rolecache method ทุกตัว nil-safe
	return NewSessionService(users, owners, nil)
}

func customer(uid string, complete bool) *entity.User {
	return &entity.User{UID: uid, Email: uid + "@test.dev", IsProfileComplete: complete}
}

func TestResolveEmptyUID(t *testing.T) {
	users := &fakeUsers{users: map[string]*entity.User{}}
	owners := &fakeOwners{restaurants: map[string]*entity.Restaurant{}}
	svc := newTestService(users, owners)

	for _, uid := range []string{"", "   "} {
		if _, err := svc.Resolve(context.Background(), uid, ""); !errors.Is(err, ErrEmptyUserID) {
			t.Errorf("Resolve(%q) err = %v, want ErrEmptyUserID", uid, err)
		}
	}
	// ต้อง fail ก่อนยิง I/O
	if users.calls != 0 || owners.calls != 0 {
		t.Errorf("stores were hit: users=%d owners=%d", users.calls, owners.calls)
	}
}

func TestResolveCustomer(t *testing.T) {
	svc := newTestService(&fakeUsers{users: map[string]*entity.User{
		"u1": customer("u1", true),
	}}, nil)

	role, err := svc.Resolve(context.Background(), "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if role.UserType != entity.UserTypeCustomer {
		t.Errorf("userType = %q", role.UserType)
	}
	if role.EntryType != entity.EntryCustomer {
		t.Errorf("entryType = %q", role.EntryType)
	}
	if role.RestaurantID != "" {
		t.Errorf("restaurantId = %q, want empty", role.RestaurantID)
	}
	if !role.ProfileComplete {
		t.Error("profileComplete = false")
	}
}

func TestResolveOwnerWithRestaurant(t *testing.T) {
	svc := newTestService(
		&fakeUsers{users: map[string]*entity.User{"u1": customer("u1", true)}},
		&fakeOwners{restaurants: map[string]*entity.Restaurant{
			"u1": {RestaurantID: "rest_42", OwnerUID: "u1", Name: "Tibet Corner"},
		}},
	)

	role, err := svc.Resolve(context.Background(), "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if role.UserType != entity.UserTypeOwner {
		t.Errorf("userType = %q, want owner", role.UserType)
	}
	if role.RestaurantID != "rest_42" {
		t.Errorf("restaurantId = %q", role.RestaurantID)
	}
	if role.EntryType != entity.EntryRestaurant {
		t.Errorf("entryType = %q", role.EntryType)
	}
}

// resolve ซ้ำด้วย input เดิมต้องได้ role เดิมทุกครั้ง
func TestResolveIdempotent(t *testing.T) {
	svc := newTestService(
		&fakeUsers{users: map[string]*entity.User{"u1": customer("u1", true)}},
		&fakeOwners{restaurants: map[string]*entity.Restaurant{
			"u1": {RestaurantID: "rest_42", OwnerUID: "u1"},
		}},
	)

	first, err := svc.Resolve(context.Background(), "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := svc.Resolve(context.Background(), "u1", "")
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("resolve #%d = %+v, want %+v", i+2, again, first)
		}
	}
}

// store พัง -> ไม่มี error หลุดออกมา แต่ degrade เป็น customer/profile ไม่ครบ
func TestResolveFailOpen(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("user store down", func(t *testing.T) {
		svc := newTestService(&fakeUsers{err: boom}, &fakeOwners{restaurants: map[string]*entity.Restaurant{
			"u1": {RestaurantID: "rest_42", OwnerUID: "u1"},
		}})
		role, err := svc.Resolve(context.Background(), "u1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role.UserType != entity.UserTypeCustomer || role.ProfileComplete {
			t.Errorf("role = %+v, want incomplete customer", role)
		}
		if NextRoute(role) != entity.RoutePersonalDetails {
			t.Errorf("route = %q", NextRoute(role))
		}
	})

	t.Run("ownership store down", func(t *testing.T) {
		svc := newTestService(&fakeUsers{users: map[string]*entity.User{
			"u1": customer("u1", true),
		}}, &fakeOwners{err: boom})
		role, err := svc.Resolve(context.Background(), "u1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// เจ้าของร้านตัวจริงก็โดนลดชั้นเป็น customer ชั่วคราว ดีกว่าค้างหน้าเปล่า
		if role.UserType != entity.UserTypeCustomer {
			t.Errorf("userType = %q, want customer", role.UserType)
		}
	})

	t.Run("everything down", func(t *testing.T) {
		svc := newTestService(&fakeUsers{err: boom}, &fakeOwners{err: boom})
		role, err := svc.Resolve(context.Background(), "u1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role.UserType != entity.UserTypeCustomer || role.ProfileComplete {
			t.Errorf("role = %+v", role)
		}
	})
}

func TestResolveEntryHint(t *testing.T) {
	svc := newTestService(&fakeUsers{users: map[string]*entity.User{
		"u1": customer("u1", true),
	}}, nil)

	role, _ := svc.Resolve(context.Background(), "u1", entity.EntryRestaurant)
	if role.EntryType != entity.EntryRestaurant {
		t.Errorf("hint ignored: entryType = %q", role.EntryType)
	}
	// hint เปลี่ยนแค่ entry ไม่เปลี่ยน userType
	if role.UserType != entity.UserTypeCustomer {
		t.Errorf("userType = %q", role.UserType)
	}
}

func TestNextRoutePriority(t *testing.T) {
	cases := []struct {
		name string
		role entity.Role
		want entity.RouteToken
	}{
		{
			"incomplete profile beats everything",
			entity.Role{UserType: entity.UserTypeOwner, RestaurantID: "rest_42", ProfileComplete: false},
			entity.RoutePersonalDetails,
		},
		{
			"incomplete customer",
			entity.Role{UserType: entity.UserTypeCustomer, ProfileComplete: false},
			entity.RoutePersonalDetails,
		},
		{
			"owner with restaurant",
			entity.Role{UserType: entity.UserTypeOwner, RestaurantID: "rest_42", ProfileComplete: true},
			entity.RouteRestaurantDashboard,
		},
		{
			"owner without restaurant",
			entity.Role{UserType: entity.UserTypeOwner, ProfileComplete: true},
			entity.RouteRestaurantOnboarding,
		},
		{
			"complete customer",
			entity.Role{UserType: entity.UserTypeCustomer, ProfileComplete: true},
			entity.RouteCustomerMain,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextRoute(c.role); got != c.want {
				t.Errorf("NextRoute = %q, want %q", got, c.want)
			}
		})
	}
}

// ลูกค้าสมัครใหม่ -> กรอกโปรไฟล์ -> เปิดร้าน: route ต้องไล่ตามสเต็ป
func TestOnboardingFlowRoutes(t *testing.T) {
	users := &fakeUsers{users: map[string]*entity.User{
		"u1": customer("u1", false),
	}}
	owners := &fakeOwners{restaurants: map[string]*entity.Restaurant{}}
	svc := newTestService(users, owners)
	ctx := context.Background()

	role, _ := svc.Resolve(ctx, "u1", "")
	if NextRoute(role) != entity.RoutePersonalDetails {
		t.Fatalf("step 1 route = %q", NextRoute(role))
	}

	users.users["u1"].IsProfileComplete = true
	role, _ = svc.Resolve(ctx, "u1", "")
	if NextRoute(role) != entity.RouteCustomerMain {
		t.Fatalf("step 2 route = %q", NextRoute(role))
	}

	owners.restaurants["u1"] = &entity.Restaurant{RestaurantID: "rest_1", OwnerUID: "u1"}
	role, _ = svc.Resolve(ctx, "u1", "")
	if NextRoute(role) != entity.RouteRestaurantDashboard {
		t.Fatalf("step 3 route = %q", NextRoute(role))
	}
}

func TestCurrentUsesSession(t *testing.T) {
	svc := newTestService(&fakeUsers{users: map[string]*entity.User{
		"u1": customer("u1", true),
	}}, nil)
	ctx := context.Background()

	if _, ok := svc.Current(ctx, "u1"); ok {
		t.Fatal("Current before Resolve should report nothing")
	}

	want, _ := svc.Resolve(ctx, "u1", "")
	got, ok := svc.Current(ctx, "u1")
	if !ok || got != want {
		t.Fatalf("Current = %+v ok=%v, want %+v", got, ok, want)
	}

	svc.EndSession(ctx, "u1")
	if _, ok := svc.Current(ctx, "u1"); ok {
		t.Error("Current after EndSession should report nothing")
	}
}

// คนละ service instance = คนละ session state ไม่แชร์กัน
func TestServiceInstanceIsolation(t *testing.T) {
	users := &fakeUsers{users: map[string]*entity.User{"u1": customer("u1", true)}}
	a := newTestService(users, nil)
	b := newTestService(users, nil)
	ctx := context.Background()

	if _, err := a.Resolve(ctx, "u1", ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Current(ctx, "u1"); ok {
		t.Error("second instance should not see the first instance's session")
	}
}

func TestAccessGates(t *testing.T) {
	owner := entity.Role{UserType: entity.UserTypeOwner}
	cust := entity.Role{UserType: entity.UserTypeCustomer}

	if !CanAccessRestaurantFeatures(owner) || CanAccessRestaurantFeatures(cust) {
		t.Error("restaurant gate wrong")
	}
	if !CanAccessCustomerFeatures(cust) || CanAccessCustomerFeatures(owner) {
		t.Error("customer gate wrong")
	}
}

func TestHelpersFailOpen(t *testing.T) {
	svc := newTestService(nil, &fakeOwners{err: errors.New("down")})
	ctx := context.Background()

	if svc.HasRestaurantProfile(ctx, "u1") {
		t.Error("HasRestaurantProfile should be false on store error")
	}
	if got := svc.RestaurantIDForOwner(ctx, "u1"); got != "" {
		t.Errorf("RestaurantIDForOwner = %q, want empty", got)
	}
}
