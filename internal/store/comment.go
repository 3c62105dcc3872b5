package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"gorm.io/gorm"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment.
	// Returns ErrCardReference if the card does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByCard returns the comments of a card, newest first.
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CommentStore bound to the given transaction.
	WithTx(tx *gorm.DB) CommentStore
}
