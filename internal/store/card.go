package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"gorm.io/gorm"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card.
	// Returns ErrListReference if the list does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByList returns the cards of one list ordered by position, then creation time.
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)

	// ListByLists returns the cards of several lists in a single query,
	// ordered by position, then creation time. Callers group by ListID.
	ListByLists(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error)

	// ListByAssignee returns the cards assigned to userID ordered by due
	// date ascending (cards without a due date last), then creation time.
	ListByAssignee(ctx context.Context, userID string) ([]domain.Card, error)

	// CountByList returns the number of cards in a list.
	CountByList(ctx context.Context, listID uuid.UUID) (int, error)

	// Update persists every mutable field of card, list_id included.
	// Returns ErrCardNotFound if the card does not exist and
	// ErrListReference if list_id names a missing list.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card and, through the schema cascade, its comments.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CardStore bound to the given transaction.
	WithTx(tx *gorm.DB) CardStore
}
