package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ecat-taratra/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Formation{},
		&models.Actualite{},
		&models.Director{},
		&models.AboutContent{},
		&models.ContactInfo{},
		&models.ContactMessage{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func strPtr(value string) *string {
	return &value
}
