package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Errorf("expected default session TTL 8h, got %s", cfg.SessionTTL)
	}
	if cfg.DB.Path != "data/app.db" {
		t.Errorf("expected default db path, got %s", cfg.DB.Path)
	}
	if cfg.Production() {
		t.Error("default environment must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_ADDR", "redis:6380")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !cfg.Production() {
		t.Error("expected production environment")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected session TTL 30m, got %s", cfg.SessionTTL)
	}
	if cfg.Redis.Addr != "redis:6380" {
		t.Errorf("expected redis addr override, got %s", cfg.Redis.Addr)
	}
}
