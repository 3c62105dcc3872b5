package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"gorm.io/gorm"
)

// ActivityStore defines the interface for the append-only activity log.
// Entries are never updated and disappear only when their board is deleted.
type ActivityStore interface {
	// Create appends an entry.
	// Returns ErrBoardReference if the board does not exist.
	Create(ctx context.Context, entry *domain.ActivityLog) error

	// ListByBoard returns at most limit entries of a board, most recent
	// first, skipping the first offset.
	ListByBoard(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error)

	// WithTx returns an ActivityStore bound to the given transaction.
	WithTx(tx *gorm.DB) ActivityStore
}
