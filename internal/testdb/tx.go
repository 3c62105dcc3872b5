package testdb

import (
	"context"
	"testing"

	"gorm.io/gorm"
)

// WithTx runs fn within a transaction that is rolled back afterwards,
// whatever fn does.
func WithTx(t *testing.T, db *gorm.DB, fn func(t *testing.T, tx *gorm.DB)) {
	t.Helper()

	tx := db.WithContext(context.Background()).Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}
	defer func() {
		if err := tx.Rollback().Error; err != nil {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
