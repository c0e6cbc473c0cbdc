package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mockmate/interview-api/internal/models"
)

// ErrDatabaseDisabled is returned by InitDatabase when DB_HOST is unset.
// Callers fall back to the no-op interview repository.
var ErrDatabaseDisabled = errors.New("database not configured")

const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

// InitDatabase connects to the interviews store and migrates the interviews
// table.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	if !cfg.DatabaseEnabled() {
		return nil, ErrDatabaseDisabled
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.Server.Env)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.Printf("✅ Database connected: %s/%s\n", cfg.Database.Host, cfg.Database.DBName)

	if err := db.AutoMigrate(&models.Interview{}); err != nil {
		return nil, fmt.Errorf("failed to migrate interviews table: %w", err)
	}

	return db, nil
}

// gormLogLevel echoes every query in development and nothing elsewhere.
func gormLogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Silent
}
