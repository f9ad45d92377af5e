package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORAGE", "")
	t.Setenv("DB_PORT", "abc")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.com, ,http://b.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != StoragePostgres {
		t.Fatalf("expected postgres storage, got %s", cfg.Storage)
	}
	if cfg.Database.Port != 5432 {
		t.Fatalf("expected default port on invalid value, got %d", cfg.Database.Port)
	}
	if cfg.JWT.AccessTTL != time.Hour || cfg.JWT.RefreshTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl %v / %v", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.com" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.TrialDays != 7 {
		t.Fatalf("expected 7 trial days, got %d", cfg.TrialDays)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("STORAGE", "redis")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestConnectionString(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5433, User: "app", Password: "p@ss", Name: "precos", SSLMode: "disable"}
	want := "postgres://app:p%40ss@db:5433/precos?sslmode=disable"
	if got := c.ConnectionString(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	c.URL = "postgres://x"
	if got := c.ConnectionString(); got != "postgres://x" {
		t.Fatalf("expected explicit url, got %s", got)
	}
}
