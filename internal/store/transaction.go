package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"gorm.io/gorm"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *gorm.DB) error

// RunInTransaction executes fn within a database transaction.
// If fn returns an error or panics, the transaction is rolled back and the
// error (or panic) is propagated. Otherwise the transaction is committed.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn TxFn) error {
	return runTx(ctx, db, nil, fn)
}

// RunInSnapshot executes fn within a read-only repeatable-read transaction,
// so every query fn issues sees the same committed state.
func RunInSnapshot(ctx context.Context, db *gorm.DB, fn TxFn) error {
	return runTx(ctx, db, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func runTx(ctx context.Context, db *gorm.DB, opts *sql.TxOptions, fn TxFn) error {
	log := logger.FromContext(ctx)

	var tx *gorm.DB
	if opts != nil {
		tx = db.WithContext(ctx).Begin(opts)
	} else {
		tx = db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		log.Error("failed to begin transaction",
			slog.String("error", tx.Error.Error()))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rbErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}
