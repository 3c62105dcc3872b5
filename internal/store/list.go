package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"gorm.io/gorm"
)

// ListStore defines the interface for list data persistence.
type ListStore interface {
	// Create saves a new list.
	// Returns ErrBoardReference if the board does not exist.
	Create(ctx context.Context, list *domain.List) error

	// GetByID retrieves a list by its unique ID.
	// Returns ErrListNotFound if the list does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)

	// ListByBoard returns the lists of a board ordered by position, then creation time.
	ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)

	// CountByBoard returns the number of lists in a board, archived ones included.
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int, error)

	// Update persists every mutable field of list.
	// Returns ErrListNotFound if the list does not exist.
	Update(ctx context.Context, list *domain.List) error

	// Delete removes a list and, through the schema cascade, its cards and comments.
	// Returns ErrListNotFound if the list does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ListStore bound to the given transaction.
	WithTx(tx *gorm.DB) ListStore
}
