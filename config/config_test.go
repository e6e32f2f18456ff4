package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "3000")
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL: got %v want %v", cfg.TokenTTL, time.Hour)
	}
	if cfg.MigrationsDir != "db/migrations" {
		t.Errorf("MigrationsDir: got %q", cfg.MigrationsDir)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr default should be empty, got %q", cfg.RedisAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TOKEN_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("Port: got %q want %q", cfg.Port, "8081")
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Errorf("JWTSecret not overridden")
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL: got %v want 30m", cfg.TokenTTL)
	}
	if cfg.DBMaxConns != 25 {
		t.Errorf("DBMaxConns: got %d want 25", cfg.DBMaxConns)
	}
	if !cfg.HTTPLogEnabled {
		t.Errorf("HTTPLogEnabled not overridden")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TOKEN_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("HTTP_LOG_ENABLED", "yep")

	cfg := Load()

	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL fallback: got %v want 1h", cfg.TokenTTL)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns fallback: got %d want 10", cfg.DBMaxConns)
	}
	if cfg.HTTPLogEnabled {
		t.Errorf("HTTPLogEnabled fallback: got true want false")
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "imf")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "gadgets")

	cfg := Load()
	want := "postgres://imf:secret@db:5433/gadgets?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("PostgresDSN: got %q want %q", got, want)
	}
}
