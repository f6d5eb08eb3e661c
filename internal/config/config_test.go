package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.StorageDriver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.StorageDriver)
	}
	if cfg.AccessTokenAge != 3000*time.Second {
		t.Errorf("expected 3000s token age, got %v", cfg.AccessTokenAge)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("expected 1m cache ttl, got %v", cfg.CacheTTL)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ACCESS_TOKEN_AGE", "15m")
	t.Setenv("CACHE_SIZE", "0")
	t.Setenv("RATE_LIMIT_RPS", "3")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := Load()

	if cfg.Port != "8080" || cfg.StorageDriver != "memory" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.AccessTokenAge != 15*time.Minute {
		t.Errorf("expected 15m, got %v", cfg.AccessTokenAge)
	}
	if cfg.CacheSize != 0 || cfg.RateLimitRPS != 3 || cfg.AutoMigrate {
		t.Errorf("unexpected values: %+v", cfg)
	}
}
