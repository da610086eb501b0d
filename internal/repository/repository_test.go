package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ecat-taratra/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Formation{},
		&models.Actualite{},
		&models.ContactInfo{},
		&models.ContactMessage{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func TestAdminRepositoryLifecycle(t *testing.T) {
	repo := NewAdminRepository(openRepositoryTestDB(t))
	ctx := context.Background()

	missing, err := repo.GetByEmail(ctx, "nobody@ecat-taratra.mg")
	if err != nil || missing != nil {
		t.Fatalf("missing admin want (nil, nil) got (%v, %v)", missing, err)
	}

	admin := &models.Admin{Name: "Rakoto", Email: "rakoto@ecat-taratra.mg", PasswordHash: "hash-1", Role: "admin"}
	if err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if admin.ID == 0 {
		t.Fatalf("admin id should be assigned")
	}

	newName := "Rakoto Jean"
	if err := repo.UpdateProfile(ctx, admin.ID, AdminProfileUpdate{Name: &newName}); err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if err := repo.UpdatePasswordHash(ctx, admin.ID, "hash-2"); err != nil {
		t.Fatalf("update password hash failed: %v", err)
	}

	stored, err := repo.GetByEmail(ctx, "rakoto@ecat-taratra.mg")
	if err != nil || stored == nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if stored.Name != newName || stored.PasswordHash != "hash-2" || stored.Role != "admin" {
		t.Fatalf("unexpected stored admin: %+v", stored)
	}

	if err := repo.Delete(ctx, admin.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	gone, err := repo.GetByID(ctx, admin.ID)
	if err != nil || gone != nil {
		t.Fatalf("deleted admin want (nil, nil) got (%v, %v)", gone, err)
	}
}

func TestAdminRepositoryListPagination(t *testing.T) {
	repo := NewAdminRepository(openRepositoryTestDB(t))
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		admin := &models.Admin{
			Name:         fmt.Sprintf("Admin %d", i),
			Email:        fmt.Sprintf("admin%d@ecat-taratra.mg", i),
			PasswordHash: "hash",
			Role:         "admin",
		}
		if err := repo.Create(ctx, admin); err != nil {
			t.Fatalf("create admin failed: %v", err)
		}
	}

	admins, total, err := repo.List(ctx, PageFilter(2, 2))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(admins) != 1 {
		t.Fatalf("want total 3 and 1 row, got %d and %d", total, len(admins))
	}
	if admins[0].Email != "admin3@ecat-taratra.mg" {
		t.Fatalf("unexpected admin on page 2: %s", admins[0].Email)
	}
	if admins[0].PasswordHash != "" {
		t.Fatalf("list should not load password hashes")
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("count want 3 got %d (%v)", count, err)
	}
}

func TestActualiteRepositoryFilters(t *testing.T) {
	repo := NewActualiteRepository(openRepositoryTestDB(t))
	ctx := context.Background()
	items := []models.Actualite{
		{Titre: "Rentrée scolaire", Contenu: "Début des cours", Categorie: "evenement"},
		{Titre: "Portes ouvertes", Contenu: "Visite du campus", Categorie: "evenement"},
		{Titre: "Résultats", Contenu: "Examens du BEPC", Categorie: "resultats"},
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			t.Fatalf("create actualite failed: %v", err)
		}
	}

	list, total, err := repo.List(ctx, ActualiteListFilter{Categorie: "evenement"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("category filter want 2 got %d", total)
	}

	list, total, err = repo.List(ctx, ActualiteListFilter{Search: "campus"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || list[0].Titre != "Portes ouvertes" {
		t.Fatalf("unexpected search result: %+v", list)
	}
}

func TestContactMessageRepositoryMarkRead(t *testing.T) {
	repo := NewContactMessageRepository(openRepositoryTestDB(t))
	ctx := context.Background()
	message := &models.ContactMessage{Name: "Rasoa", Email: "rasoa@example.mg", Subject: "Inscription", Message: "Bonjour"}
	if err := repo.Create(ctx, message); err != nil {
		t.Fatalf("create message failed: %v", err)
	}

	unread, err := repo.CountUnread(ctx)
	if err != nil || unread != 1 {
		t.Fatalf("unread want 1 got %d (%v)", unread, err)
	}
	if err := repo.MarkRead(ctx, message.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	isRead := true
	list, total, err := repo.List(ctx, ContactMessageListFilter{IsRead: &isRead})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || !list[0].IsRead {
		t.Fatalf("message should be read: %+v", list)
	}
}

func TestContactInfoRepositoryGetFirst(t *testing.T) {
	repo := NewContactInfoRepository(openRepositoryTestDB(t))
	ctx := context.Background()

	first, err := repo.GetFirst(ctx)
	if err != nil || first != nil {
		t.Fatalf("empty table want (nil, nil) got (%v, %v)", first, err)
	}
	info := &models.ContactInfo{Email: "contact@ecat-taratra.mg", Phone: "+261 34 00 000 00", Address: "Antsirabe"}
	if err := repo.Create(ctx, info); err != nil {
		t.Fatalf("create contact info failed: %v", err)
	}
	first, err = repo.GetFirst(ctx)
	if err != nil || first == nil || first.Email != "contact@ecat-taratra.mg" {
		t.Fatalf("unexpected first contact info: %+v (%v)", first, err)
	}
}
