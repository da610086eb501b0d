package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecat-taratra/backend/internal/auth"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupModelsTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:models_init_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	DB = db
	if err := AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
}

func TestInitDefaultAdminCreatesOnce(t *testing.T) {
	setupModelsTestDB(t)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	if err := InitDefaultAdmin(DefaultAdminOptions{}, hasher); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}
	if err := InitDefaultAdmin(DefaultAdminOptions{Email: "second@ecat-taratra.mg"}, hasher); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	var admins []Admin
	if err := DB.Find(&admins).Error; err != nil {
		t.Fatalf("query admins failed: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("want exactly one admin, got %d", len(admins))
	}
	admin := admins[0]
	if admin.Email != DefaultAdminEmail || admin.Name != DefaultAdminName || admin.Role != AdminRoleAdmin {
		t.Fatalf("unexpected default admin: %+v", admin)
	}
	if !hasher.Verify(DefaultAdminPassword, admin.PasswordHash) {
		t.Fatalf("default password should verify")
	}
}

func TestInitDefaultAdminRequiresExplicitPassword(t *testing.T) {
	setupModelsTestDB(t)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	err := InitDefaultAdmin(DefaultAdminOptions{RequirePassword: true}, hasher)
	if !errors.Is(err, ErrDefaultAdminPasswordRequired) {
		t.Fatalf("want ErrDefaultAdminPasswordRequired got %v", err)
	}

	err = InitDefaultAdmin(DefaultAdminOptions{
		Email:           " Direction@ECAT-Taratra.mg ",
		Password:        "s3cret-pass",
		RequirePassword: true,
	}, hasher)
	if err != nil {
		t.Fatalf("init with explicit password failed: %v", err)
	}
	var admin Admin
	if err := DB.First(&admin).Error; err != nil {
		t.Fatalf("query admin failed: %v", err)
	}
	if admin.Email != "direction@ecat-taratra.mg" {
		t.Fatalf("email should be normalized, got %s", admin.Email)
	}
	if !hasher.Verify("s3cret-pass", admin.PasswordHash) {
		t.Fatalf("configured password should verify")
	}
}
