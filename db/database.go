package db

import (
	"log"
	"os"
	"path/filepath"

	"meghmart/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the sqlite database at dbPath, creating the file and its
// directory if needed, and migrates the schema.
func Open(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Println("Database file does not exist, creating:", dbPath)
		file, err := os.Create(dbPath)
		if err != nil {
			return nil, err
		}
		file.Close()
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connected successfully at", dbPath)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate runs AutoMigrate for every entity. Exposed separately so tests can
// migrate an in-memory database.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{}, &models.Category{}, &models.SubCategory{}, &models.Brand{},
		&models.Product{}, &models.Variant{}, &models.Discount{}, &models.Coupon{},
		&models.Cart{}, &models.Wishlist{}, &models.Review{},
	)
}
