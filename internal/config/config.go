package config

import (
	"os"
	"time"

	"forumapi/internal/utils"
)

type Config struct {
	// Server
	Port    string
	GinMode string

	// Storage
	StorageDriver string // "postgres" or "memory"
	DatabaseURL   string
	QueryTimeout  time.Duration
	MaxOpenConns  int
	MaxIdleConns  int
	AutoMigrate   bool

	// Authentication
	AccessTokenKey  string
	RefreshTokenKey string
	AccessTokenAge  time.Duration

	// Thread detail cache
	CacheSize int
	CacheTTL  time.Duration

	// Rate limiting on mutating routes
	RateLimitRPS   float64
	RateLimitBurst int

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "release"),

		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		// Fallback for local dev if not set
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=forumapi port=5432 sslmode=disable"),
		QueryTimeout: utils.StringToDuration(getEnv("DB_QUERY_TIMEOUT", "10s")),
		MaxOpenConns: utils.StringToInt(getEnv("DB_MAX_OPEN_CONNS", "20")),
		MaxIdleConns: utils.StringToInt(getEnv("DB_MAX_IDLE_CONNS", "5")),
		AutoMigrate:  getEnv("DB_AUTO_MIGRATE", "true") == "true",

		AccessTokenKey:  getEnv("ACCESS_TOKEN_KEY", "access_secret_change_me"),
		RefreshTokenKey: getEnv("REFRESH_TOKEN_KEY", "refresh_secret_change_me"),
		AccessTokenAge:  utils.StringToDuration(getEnv("ACCESS_TOKEN_AGE", "3000")),

		CacheSize: utils.StringToInt(getEnv("CACHE_SIZE", "500")),
		CacheTTL:  utils.StringToDuration(getEnv("CACHE_TTL", "1m")),

		RateLimitRPS:   float64(utils.StringToInt(getEnv("RATE_LIMIT_RPS", "10"))),
		RateLimitBurst: utils.StringToInt(getEnv("RATE_LIMIT_BURST", "20")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
