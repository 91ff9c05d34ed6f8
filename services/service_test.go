package services

import (
	"strings"
	"testing"

	"pgstay-backend/config"
	"pgstay-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw sql db: %v", err)
	}
	// single connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.local",
		Password: "hashed",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func createListing(t *testing.T, svc *ListingService, ownerID uint, in ListingInput) *models.Listing {
	t.Helper()

	if in.Contact == "" {
		in.Contact = "9876543210"
	}
	listing, err := svc.Create(ownerID, in)
	if err != nil {
		t.Fatalf("create listing %q: %v", in.Name, err)
	}
	return listing
}
