package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("HOMECART_SERVER_PORT")
		os.Unsetenv("HOMECART_SERVER_ENVIRONMENT")
		os.Unsetenv("HOMECART_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("HOMECART_DB_PATH")
		os.Unsetenv("HOMECART_CACHE_TTL")
		os.Unsetenv("HOMECART_RATELIMIT_PER_IP")
		os.Unsetenv("HOMECART_RATELIMIT_BURST")
		os.Unsetenv("HOMECART_PARSER_ENABLE_DEBUG_LOGGING")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
			t.Errorf("Server.AllowedOrigins = %v, want [*]", cfg.Server.AllowedOrigins)
		}
		if cfg.DB.Path != "homecart.db" {
			t.Errorf("DB.Path = %s, want homecart.db", cfg.DB.Path)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 10 {
			t.Errorf("RateLimit.PerIP = %v, want 10", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("RateLimit.Burst = %d, want 20", cfg.RateLimit.Burst)
		}
		if cfg.Parser.EnableDebugLogging {
			t.Errorf("Parser.EnableDebugLogging = true, want false")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HOMECART_SERVER_PORT", "9090")
		os.Setenv("HOMECART_SERVER_ENVIRONMENT", "production")
		os.Setenv("HOMECART_DB_PATH", "/data/homecart.db")
		os.Setenv("HOMECART_CACHE_TTL", "1h")
		os.Setenv("HOMECART_RATELIMIT_PER_IP", "50")
		os.Setenv("HOMECART_RATELIMIT_BURST", "100")
		os.Setenv("HOMECART_PARSER_ENABLE_DEBUG_LOGGING", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.DB.Path != "/data/homecart.db" {
			t.Errorf("DB.Path = %s, want /data/homecart.db", cfg.DB.Path)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 50 {
			t.Errorf("RateLimit.PerIP = %v, want 50", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 100 {
			t.Errorf("RateLimit.Burst = %d, want 100", cfg.RateLimit.Burst)
		}
		if !cfg.Parser.EnableDebugLogging {
			t.Errorf("Parser.EnableDebugLogging = false, want true")
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HOMECART_RATELIMIT_PER_IP", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for negative rate limit")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("validates successfully with all required fields", func(t *testing.T) {
		cfg := &Config{
			DB:        DBConfig{Path: "homecart.db"},
			RateLimit: RateLimitConfig{PerIP: 10, Burst: 20},
		}

		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when db path is empty", func(t *testing.T) {
		cfg := &Config{
			RateLimit: RateLimitConfig{PerIP: 10, Burst: 20},
		}

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty db path")
		}
	})

	t.Run("fails for zero burst", func(t *testing.T) {
		cfg := &Config{
			DB:        DBConfig{Path: "homecart.db"},
			RateLimit: RateLimitConfig{PerIP: 10},
		}

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero burst")
		}
	})
}
