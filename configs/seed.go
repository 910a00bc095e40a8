package configs

import (
	"fmt"
	"log"
	"time"

	"plateful/entity"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"golang.org/x/crypto/bcrypt"
)

// เมนูตัวอย่างให้ฝั่ง demo มีของโชว์
var demoPacks = []struct {
	name    string
	cuisine string
	veg     bool
	price   float64
}{
	{"Veg Momos", "chinese", true, 80},
	{"Paneer Tikka Box", "north_indian", true, 220},
	{"Masala Dosa Combo", "south_indian", true, 150},
	{"Chicken Biryani Pack", "north_indian", false, 260},
	{"Pasta Surprise", "italian", true, 180},
	{"Brownie Box", "desserts", true, 120},
}

// SeedDemo สร้างข้อมูลเล่น ๆ ไว้ลองแอป: ร้านสองร้านพร้อม pack + ลูกค้าหนึ่งคน
// ข้ามถ้ามี user อยู่แล้ว
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count > 0 {
		log.Println("skip demo seed: users exist")
		return nil
	}

	fake := faker.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// ลูกค้า
	customer := entity.User{
		UID:               uuid.NewString(),
		Email:             "customer@plateful.dev",
		Password:          string(hash),
		Name:              fake.Person().Name(),
		PhoneNumber:       fake.Phone().Number(),
		IsProfileComplete: true,
		Role:              "customer",
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	// ร้าน + เจ้าของ
	for i := 0; i < 2; i++ {
		owner := entity.User{
			UID:               uuid.NewString(),
			Email:             fmt.Sprintf("owner%d@plateful.dev", i+1),
			Password:          string(hash),
			Name:              fake.Person().Name(),
			PhoneNumber:       fake.Phone().Number(),
			IsProfileComplete: true,
			Role:              "owner",
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}

		rest := entity.Restaurant{
			RestaurantID: cuid.New(),
			OwnerUID:     owner.UID,
			Name:         fake.Company().Name(),
			Description:  fake.Lorem().Sentence(8),
			PhoneNumber:  fake.Phone().Number(),
			Email:        owner.Email,
			Address:      fake.Address().StreetAddress(),
			City:         fake.Address().City(),
		}
		if err := db.Create(&rest).Error; err != nil {
			return err
		}

		for j, p := range demoPacks {
			if j%2 != i { // แบ่งเมนูกันคนละครึ่ง
				continue
			}
			pack := entity.FoodPack{
				PackID:          cuid.New(),
				RestaurantID:    rest.RestaurantID,
				RestaurantName:  rest.Name,
				VendorUID:       owner.UID,
				Name:            p.name,
				Description:     fake.Lorem().Sentence(6),
				OriginalPrice:   p.price,
				DiscountedPrice: p.price / 2,
				Quantity:        fake.IntBetween(3, 10),
				TotalQuantity:   10,
				ExpiresAt:       time.Now().Add(6 * time.Hour),
				CuisineType:     p.cuisine,
				IsVegetarian:    p.veg,
				Status:          entity.PackAvailable,
			}
			if err := db.Create(&pack).Error; err != nil {
				return err
			}
		}
	}

	log.Println("demo data seeded")
	return nil
}
