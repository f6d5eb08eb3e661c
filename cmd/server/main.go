package main

import (
	"log"

	"forumapi/internal/config"
	"forumapi/internal/db"
	"forumapi/internal/middleware"
	"forumapi/internal/repository"
	"forumapi/internal/router"
	"forumapi/internal/services"
	"forumapi/internal/utils"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()
	utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile)
	gin.SetMode(cfg.GinMode)
	gin.DefaultWriter = utils.LogWriter()
	gin.DefaultErrorWriter = utils.LogWriter()

	// Storage
	var (
		repos *repository.Repositories
		ping  func() error
	)
	switch cfg.StorageDriver {
	case "memory":
		repos = repository.NewMemoryStore(utils.DefaultIDGenerator).Repositories()
		utils.LogInfo("Using in-memory storage, data is lost on restart")
	default:
		conn, err := db.Open(cfg)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to initialize database")
		}
		repos = repository.NewPostgresRepositories(conn, utils.DefaultIDGenerator)
		ping = db.Ping(conn)
	}

	cache, err := utils.NewCache(cfg.CacheSize, cfg.CacheTTL)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize cache")
	}
	tokens := utils.NewTokenManager(cfg.AccessTokenKey, cfg.RefreshTokenKey, cfg.AccessTokenAge)
	uc := services.NewUseCases(services.Deps{Repos: repos, Tokens: tokens, Cache: cache})

	// Initialize Gin
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	if cfg.QueryTimeout > 0 {
		r.Use(middleware.QueryTimeout(cfg.QueryTimeout))
	}

	router.RegisterRoutes(r, uc, router.Options{
		Tokens:         tokens,
		Ping:           ping,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	utils.Logger.WithField("port", cfg.Port).Info("Forum API server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Logger.WithError(err).Fatal("server stopped")
	}
}
