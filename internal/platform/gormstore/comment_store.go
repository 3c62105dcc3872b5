package gormstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// CommentStore implements store.CommentStore with gorm.
type CommentStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.CommentStore = (*CommentStore)(nil)

// NewCommentStore creates a CommentStore. If logger is nil, a default logger will be used.
func NewCommentStore(db *gorm.DB, logger *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// WithTx implements store.CommentStore.WithTx.
func (s *CommentStore) WithTx(tx *gorm.DB) store.CommentStore {
	return &CommentStore{db: tx, logger: s.logger}
}

// Create implements store.CommentStore.Create.
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(commentToModel(comment)).Error; err != nil {
		return store.NewStoreError("comment", "create", "failed to create comment",
			mapEntityError(err, nil, store.ErrCardReference))
	}
	return nil
}

// GetByID implements store.CommentStore.GetByID.
func (s *CommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var m commentModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapEntityError(err, store.ErrCommentNotFound, nil)
	}
	comment := m.toDomain()
	return &comment, nil
}

// ListByCard implements store.CommentStore.ListByCard.
func (s *CommentStore) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
	var models []commentModel
	err := s.db.WithContext(ctx).Where("card_id = ?", cardID).
		Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, store.NewStoreError("comment", "list", "failed to list comments", MapError(err))
	}

	comments := make([]domain.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, models[i].toDomain())
	}
	return comments, nil
}

// Delete implements store.CommentStore.Delete.
func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&commentModel{})
	if res.Error != nil {
		return store.NewStoreError("comment", "delete", "failed to delete comment", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrCommentNotFound
	}
	return nil
}
