package config

import (
	"testing"
	"time"
)

// TestLoad tests configuration defaults and overrides.
//
// WHY: The server must start with sensible defaults when no environment is set,
// and pick up overrides for the cache and benchmark import.
func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("BENCHMARK_CACHE_TTL", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if cfg.Server.Port != "5001" {
			t.Errorf("Port = %s, want 5001", cfg.Server.Port)
		}
		if cfg.Cache.RedisAddr != "" {
			t.Errorf("RedisAddr = %q, want empty", cfg.Cache.RedisAddr)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 {
			t.Errorf("Expected 2 default origins, got %v", cfg.CORS.AllowedOrigins)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("BENCHMARK_CACHE_TTL", "15m")
		t.Setenv("BENCHMARK_FILE", "benchmarks.yaml")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Addr = %s, want 0.0.0.0:8080", cfg.Server.Addr)
		}
		if cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Unexpected cache config %+v", cfg.Cache)
		}
		if cfg.Benchmarks.File != "benchmarks.yaml" {
			t.Errorf("Benchmark file = %q", cfg.Benchmarks.File)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
			t.Errorf("Unexpected origins %v", cfg.CORS.AllowedOrigins)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("BENCHMARK_CACHE_TTL", "soon")

		if _, err := Load(); err == nil {
			t.Error("Expected error for an invalid TTL")
		}
	})
}
