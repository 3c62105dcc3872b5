package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/workboard-api/internal/ciutil"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"gorm.io/gorm"
)

// OpenPostgres connects to the external PostgreSQL test database and
// migrates it. The test is skipped when no database is configured. Boards
// are deleted when the test ends; everything else cascades with them.
func OpenPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	url := ciutil.TestDatabaseURL(Logger())
	if url == "" {
		t.Skipf("set %s to run against PostgreSQL", ciutil.EnvTestDBURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := Logger()
	db, err := gormstore.Open(ctx, url, gormstore.Options{
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		Logger:       log,
	})
	if err != nil {
		t.Fatalf("failed to open postgres test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Exec("DELETE FROM boards").Error; err != nil {
			t.Errorf("failed to clean postgres test database: %v", err)
		}
		if err := gormstore.Close(db); err != nil {
			t.Errorf("failed to close postgres test database: %v", err)
		}
	})

	if err := gormstore.Migrate(ctx, db, log); err != nil {
		t.Fatalf("failed to migrate postgres test database: %v", err)
	}
	return db
}
