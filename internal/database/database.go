package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/macroplate/backend/config"
)

// New connects to the hosted Postgres backend. When the connection fails
// and an offline cache path is configured, it falls back to a local SQLite
// file so the app keeps working without the hosted store.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err == nil {
		if sqlDB, poolErr := db.DB(); poolErr == nil {
			sqlDB.SetMaxOpenConns(25)
			sqlDB.SetMaxIdleConns(25)
			sqlDB.SetConnMaxLifetime(5 * time.Minute)
		}
		log.Printf("Successfully connected to database")
		return db, nil
	}

	if cfg.OfflineCachePath == "" {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Postgres unavailable (%v), falling back to offline cache at %s", err, cfg.OfflineCachePath)
	db, err = gorm.Open(sqlite.Open(cfg.OfflineCachePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening offline cache: %w", err)
	}
	return db, nil
}
