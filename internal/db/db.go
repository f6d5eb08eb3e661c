package db

import (
	"fmt"
	"time"

	"forumapi/internal/config"
	"forumapi/internal/models"
	"forumapi/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL and optionally migrates the forum tables.
func Open(cfg *config.Config) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:                 utils.GetGormLogger(),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	utils.LogSuccess("Database connection established")

	if cfg.AutoMigrate {
		if err := Migrate(conn); err != nil {
			return nil, err
		}
	}
	return conn, nil
}

// Migrate 按依赖顺序建表
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.Authentication{},
		&models.Thread{},
		&models.Comment{},
		&models.Reply{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	utils.LogSuccess("Database migration completed")
	return nil
}

// Ping is used by /healthz.
func Ping(conn *gorm.DB) func() error {
	return func() error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}
