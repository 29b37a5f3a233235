package database

import (
	"testing"

	"manyar-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM admins")
	db.Exec("DELETE FROM product_images")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM contact_messages")
	return db
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, model := range []interface{}{
		&models.Category{}, &models.Product{}, &models.ProductImage{},
		&models.ContactMessage{}, &models.Admin{}, &models.Session{},
	} {
		if !db.Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
}

func TestSeedDefaultCategoriesOnlyOnEmptyTable(t *testing.T) {
	db := openTestDB(t)

	if err := SeedDefaultCategories(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", count)
	}

	// A second run must not duplicate, and operator deletions stick.
	db.Where("name_en = ?", "Beauty & Care Products").Delete(&models.Category{})
	if err := SeedDefaultCategories(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	db.Model(&models.Category{}).Count(&count)
	if count != 3 {
		t.Errorf("expected seed to be a no-op with existing rows, got %d", count)
	}
}
