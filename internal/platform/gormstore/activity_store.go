package gormstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// ActivityStore implements store.ActivityStore with gorm.
type ActivityStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.ActivityStore = (*ActivityStore)(nil)

// NewActivityStore creates an ActivityStore. If logger is nil, a default logger will be used.
func NewActivityStore(db *gorm.DB, logger *slog.Logger) *ActivityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "activity_store")),
	}
}

// WithTx implements store.ActivityStore.WithTx.
func (s *ActivityStore) WithTx(tx *gorm.DB) store.ActivityStore {
	return &ActivityStore{db: tx, logger: s.logger}
}

// Create implements store.ActivityStore.Create.
func (s *ActivityStore) Create(ctx context.Context, entry *domain.ActivityLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(activityToModel(entry)).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to record activity",
			slog.String("board_id", entry.BoardID.String()),
			slog.String("activity_type", string(entry.Type)),
			slog.String("error", err.Error()))
		return store.NewStoreError("activity", "create", "failed to record activity",
			mapEntityError(err, nil, store.ErrBoardReference))
	}
	return nil
}

// ListByBoard implements store.ActivityStore.ListByBoard.
func (s *ActivityStore) ListByBoard(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error) {
	var models []activityModel
	err := s.db.WithContext(ctx).Where("board_id = ?", boardID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, store.NewStoreError("activity", "list", "failed to list activities", MapError(err))
	}

	entries := make([]domain.ActivityLog, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].toDomain())
	}
	return entries, nil
}
