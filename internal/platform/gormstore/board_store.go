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

// BoardStore implements store.BoardStore with gorm.
type BoardStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Ensure BoardStore implements store.BoardStore interface
var _ store.BoardStore = (*BoardStore)(nil)

// NewBoardStore creates a BoardStore. The db handle is owned by the caller.
// If logger is nil, a default logger will be used.
func NewBoardStore(db *gorm.DB, logger *slog.Logger) *BoardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardStore{
		db:     db,
		logger: logger.With(slog.String("component", "board_store")),
	}
}

// WithTx implements store.BoardStore.WithTx.
func (s *BoardStore) WithTx(tx *gorm.DB) store.BoardStore {
	return &BoardStore{db: tx, logger: s.logger}
}

// Create implements store.BoardStore.Create.
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) error {
	if err := board.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(boardToModel(board)).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create board",
			slog.String("board_id", board.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("board", "create", "failed to create board", MapError(err))
	}
	return nil
}

// GetByID implements store.BoardStore.GetByID.
func (s *BoardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var m boardModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapEntityError(err, store.ErrBoardNotFound, nil)
	}
	board := m.toDomain()
	return &board, nil
}

// List implements store.BoardStore.List.
func (s *BoardStore) List(ctx context.Context, filter store.BoardFilter) ([]domain.Board, error) {
	q := s.db.WithContext(ctx).Model(&boardModel{})
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if !filter.IncludeArchived {
		q = q.Where("is_archived = ?", false)
	}

	var models []boardModel
	if err := q.Order("updated_at DESC").Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, store.NewStoreError("board", "list", "failed to list boards", MapError(err))
	}

	boards := make([]domain.Board, 0, len(models))
	for i := range models {
		boards = append(boards, models[i].toDomain())
	}
	return boards, nil
}

// Update implements store.BoardStore.Update.
func (s *BoardStore) Update(ctx context.Context, board *domain.Board) error {
	if err := board.Validate(); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&boardModel{}).Where("id = ?", board.ID).
		Updates(map[string]interface{}{
			"name":        board.Name,
			"description": board.Description,
			"color":       board.Color,
			"is_archived": board.IsArchived,
			"updated_at":  board.UpdatedAt.UTC(),
		})
	if res.Error != nil {
		return store.NewStoreError("board", "update", "failed to update board", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrBoardNotFound
	}
	return nil
}

// Delete implements store.BoardStore.Delete.
func (s *BoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&boardModel{})
	if res.Error != nil {
		return store.NewStoreError("board", "delete", "failed to delete board", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrBoardNotFound
	}
	return nil
}
