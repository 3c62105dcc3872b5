package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"gorm.io/gorm"
)

// BoardFilter narrows the boards returned by BoardStore.List.
type BoardFilter struct {
	// OwnerID restricts results to one owner when non-empty.
	OwnerID string
	// IncludeArchived returns archived boards as well.
	IncludeArchived bool
}

// BoardStore defines the interface for board data persistence.
type BoardStore interface {
	// Create saves a new board.
	Create(ctx context.Context, board *domain.Board) error

	// GetByID retrieves a board by its unique ID.
	// Returns ErrBoardNotFound if the board does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	// List returns boards matching filter, most recently updated first.
	List(ctx context.Context, filter BoardFilter) ([]domain.Board, error)

	// Update persists every mutable field of board.
	// Returns ErrBoardNotFound if the board does not exist.
	Update(ctx context.Context, board *domain.Board) error

	// Delete removes a board by its ID.
	// Returns ErrBoardNotFound if the board does not exist.
	//
	// Lists, cards, comments and activity entries are removed by the
	// ON DELETE CASCADE foreign keys in the schema, not by application code.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a BoardStore bound to the given transaction.
	WithTx(tx *gorm.DB) BoardStore
}
