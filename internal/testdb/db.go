package testdb

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"gorm.io/gorm"
)

// URL is the connection URL used by Open.
const URL = "sqlite://:memory:"

// Open creates a migrated in-memory database and closes it when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log := Logger()
	db, err := gormstore.Open(ctx, URL, gormstore.Options{Logger: log})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := gormstore.Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := gormstore.Migrate(ctx, db, log); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// Logger returns a logger that discards output, for wiring stores and
// services in tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
