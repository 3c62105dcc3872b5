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

// ListStore implements store.ListStore with gorm.
type ListStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.ListStore = (*ListStore)(nil)

// NewListStore creates a ListStore. If logger is nil, a default logger will be used.
func NewListStore(db *gorm.DB, logger *slog.Logger) *ListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ListStore{
		db:     db,
		logger: logger.With(slog.String("component", "list_store")),
	}
}

// WithTx implements store.ListStore.WithTx.
func (s *ListStore) WithTx(tx *gorm.DB) store.ListStore {
	return &ListStore{db: tx, logger: s.logger}
}

// Create implements store.ListStore.Create.
func (s *ListStore) Create(ctx context.Context, list *domain.List) error {
	if err := list.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(listToModel(list)).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("failed to create list",
			slog.String("board_id", list.BoardID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("list", "create", "failed to create list",
			mapEntityError(err, nil, store.ErrBoardReference))
	}
	return nil
}

// GetByID implements store.ListStore.GetByID.
func (s *ListStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	var m listModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapEntityError(err, store.ErrListNotFound, nil)
	}
	list := m.toDomain()
	return &list, nil
}

// ListByBoard implements store.ListStore.ListByBoard.
func (s *ListStore) ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error) {
	q := s.db.WithContext(ctx).Where("board_id = ?", boardID)
	if !includeArchived {
		q = q.Where("is_archived = ?", false)
	}

	var models []listModel
	if err := q.Order("position ASC").Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, store.NewStoreError("list", "list", "failed to list lists", MapError(err))
	}

	lists := make([]domain.List, 0, len(models))
	for i := range models {
		lists = append(lists, models[i].toDomain())
	}
	return lists, nil
}

// CountByBoard implements store.ListStore.CountByBoard.
func (s *ListStore) CountByBoard(ctx context.Context, boardID uuid.UUID) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&listModel{}).Where("board_id = ?", boardID).Count(&n).Error
	if err != nil {
		return 0, store.NewStoreError("list", "count", "failed to count lists", MapError(err))
	}
	return int(n), nil
}

// Update implements store.ListStore.Update.
func (s *ListStore) Update(ctx context.Context, list *domain.List) error {
	if err := list.Validate(); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&listModel{}).Where("id = ?", list.ID).
		Updates(map[string]interface{}{
			"name":        list.Name,
			"position":    list.Position,
			"is_archived": list.IsArchived,
			"updated_at":  list.UpdatedAt.UTC(),
		})
	if res.Error != nil {
		return store.NewStoreError("list", "update", "failed to update list", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrListNotFound
	}
	return nil
}

// Delete implements store.ListStore.Delete.
func (s *ListStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&listModel{})
	if res.Error != nil {
		return store.NewStoreError("list", "delete", "failed to delete list", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrListNotFound
	}
	return nil
}
