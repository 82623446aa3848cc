package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRES_HOURS", "")

	cfg := Load()
	if cfg.Port != DefaultPort {
		t.Fatalf("port %q", cfg.Port)
	}
	if string(cfg.JWTSecret) != DefaultJWTSecret {
		t.Fatalf("secret %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("ttl %v", cfg.TokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_EXPIRES_HOURS", "2")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port %q", cfg.Port)
	}
	if string(cfg.JWTSecret) != "prod-secret" {
		t.Fatalf("secret %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("ttl %v", cfg.TokenTTL)
	}

	t.Setenv("JWT_EXPIRES_HOURS", "not a number")
	if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("bad ttl should fall back, got %v", cfg.TokenTTL)
	}
}
