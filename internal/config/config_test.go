package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	cfg := Load()
	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected default driver: %s", cfg.Database.Driver)
	}
	if cfg.Bootstrap.AdminEmail != "admin@ecat-taratra.mg" {
		t.Fatalf("unexpected default admin email: %s", cfg.Bootstrap.AdminEmail)
	}
	if cfg.Redis.Enabled || cfg.Queue.Enabled {
		t.Fatalf("redis and queue should be disabled by default")
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		t.Fatalf("upload allowed types should have defaults")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("server:\n  port: \"9100\"\njwt:\n  secret: file-secret\ncors:\n  allowed_origins:\n    - https://ecat-taratra.mg\n")
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yml"), content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	cfg := Load()
	if cfg.Server.Port != "9100" {
		t.Fatalf("port want 9100 got %s", cfg.Server.Port)
	}
	if cfg.JWT.SecretKey != "file-secret" {
		t.Fatalf("secret want file-secret got %s", cfg.JWT.SecretKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://ecat-taratra.mg" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}
