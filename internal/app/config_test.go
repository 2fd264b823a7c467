package app_test

import (
	"testing"
	"time"

	"github.com/partydrop/partydrop/internal/app"
	_ "github.com/partydrop/partydrop/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.AppAddr)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("expected 7 day token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.WebBaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected web base url %q", cfg.WebBaseURL)
	}
	if cfg.IsProduction() {
		t.Fatal("default env must not be production")
	}
}

func TestLoadConfigMissingSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	if _, err := app.LoadConfig(); err == nil {
		t.Fatal("expected error when token secret missing")
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production env")
	}
}
