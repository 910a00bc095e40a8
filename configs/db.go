package configs

import (
	"plateful/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema (ตะกร้าเป็น in-memory ไม่มีตาราง)
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.FoodPack{},
		&entity.Reservation{},
		&entity.Review{},
	)
}
