// Package db opens the application's Postgres connection.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mananuf/voba-portal/internal/config"
	announcemententity "github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

const retryInterval = 3 * time.Second

// Opener dials a database from a DSN. Injected so retry behaviour can be
// tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps dialing until the database accepts the connection
// or the timeout passes. Containers often win the startup race against
// their database.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to Postgres and runs migrations when enabled.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(cfg.DSN(), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&entity.User{},
			&announcemententity.Announcement{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
