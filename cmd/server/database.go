package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/workboard-api/internal/config"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"gorm.io/gorm"
)

// databaseSetupTimeout bounds connecting and migrating at startup.
const databaseSetupTimeout = 30 * time.Second

// setupAppDatabase opens the configured database and brings its schema up
// to date. The connection is closed again if migrating fails.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseSetupTimeout)
	defer cancel()

	db, err := gormstore.Open(ctx, cfg.Database.URL, gormstore.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := gormstore.Migrate(ctx, db, logger); err != nil {
		if closeErr := gormstore.Close(db); closeErr != nil {
			logger.Error("Error closing database connection", slog.Any("error", closeErr))
		}
		return nil, err
	}

	return db, nil
}
