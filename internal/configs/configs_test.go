package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_HOST", "APP_PORT", "DATABASE_DSN", "REDIS_ADDR", "RATE_LIMIT_PER_MINUTE", "CORS_ALLOWED_ORIGINS", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppURL != "127.0.0.1:8080" {
		t.Errorf("expected default app url, got %s", cfg.AppURL)
	}
	if cfg.DatabaseDSN != "tasks.db" {
		t.Errorf("expected default dsn, got %s", cfg.DatabaseDSN)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected redis disabled by default, got %s", cfg.RedisAddr)
	}
	if cfg.RateLimit != 120 {
		t.Errorf("expected default rate limit 120, got %d", cfg.RateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OVERDUE_WORKERS", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OverdueWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.OverdueWorkers)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("non integer", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_PER_MINUTE", "many")
		if _, err := Load(); err == nil {
			t.Error("expected error for non integer value")
		}
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("OVERDUE_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Error("expected error for zero workers")
		}
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		if _, err := Load(); err == nil {
			t.Error("expected error for unknown log format")
		}
	})
}
