// Package main implements the entry point for the WorkBoard API server,
// which serves boards, lists, cards, comments and their activity log.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply pending database migrations and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateOnly); err != nil {
		log.Fatalf("WorkBoard API server failed: %v", err)
	}
}

// run loads configuration, connects to the database and serves HTTP until
// a shutdown signal arrives. With migrateOnly it stops after migrating.
func run(ctx context.Context, migrateOnly bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateOnly {
		logger.Info("Migrations applied, exiting")
		if err := gormstore.Close(db); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		}
		return nil
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = gormstore.Close(db)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
