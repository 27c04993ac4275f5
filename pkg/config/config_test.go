package config

import (
	"testing"
	"time"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvPort, "8080")
}

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.Pricing.TaxRate != 0.05 {
		t.Fatalf("unexpected default tax rate %v", cfg.Pricing.TaxRate)
	}
	if cfg.Pricing.DiscountThreshold != 500 {
		t.Fatalf("unexpected default discount threshold %v", cfg.Pricing.DiscountThreshold)
	}
	if cfg.Realtime.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected realtime write timeout %v", cfg.Realtime.WriteTimeout)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv(EnvPort, "8080")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RedisBackendNeedsURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreBackend, StoreBackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without url to return an error")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.URL == "" {
		t.Fatal("expected redis url to be populated")
	}
}

func TestLoad_UnknownBackendRejected(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreBackend, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
