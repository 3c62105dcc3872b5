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

// CardStore implements store.CardStore with gorm.
type CardStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates a CardStore. If logger is nil, a default logger will be used.
func NewCardStore(db *gorm.DB, logger *slog.Logger) *CardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// WithTx implements store.CardStore.WithTx.
func (s *CardStore) WithTx(tx *gorm.DB) store.CardStore {
	return &CardStore{db: tx, logger: s.logger}
}

// Create implements store.CardStore.Create.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(cardToModel(card)).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("failed to create card",
			slog.String("list_id", card.ListID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("card", "create", "failed to create card",
			mapEntityError(err, nil, store.ErrListReference))
	}
	return nil
}

// GetByID implements store.CardStore.GetByID.
func (s *CardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var m cardModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapEntityError(err, store.ErrCardNotFound, nil)
	}
	card := m.toDomain()
	return &card, nil
}

// ListByList implements store.CardStore.ListByList.
func (s *CardStore) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	return s.find(ctx, s.db.WithContext(ctx).Where("list_id = ?", listID).
		Order("position ASC").Order("created_at ASC"))
}

// ListByLists implements store.CardStore.ListByLists.
func (s *CardStore) ListByLists(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error) {
	if len(listIDs) == 0 {
		return []domain.Card{}, nil
	}
	return s.find(ctx, s.db.WithContext(ctx).Where("list_id IN ?", listIDs).
		Order("position ASC").Order("created_at ASC"))
}

// ListByAssignee implements store.CardStore.ListByAssignee.
func (s *CardStore) ListByAssignee(ctx context.Context, userID string) ([]domain.Card, error) {
	return s.find(ctx, s.db.WithContext(ctx).Where("assigned_to = ?", userID).
		Order("due_date IS NULL").Order("due_date ASC").Order("created_at ASC"))
}

func (s *CardStore) find(ctx context.Context, q *gorm.DB) ([]domain.Card, error) {
	var models []cardModel
	if err := q.Find(&models).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query cards",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("card", "list", "failed to list cards", MapError(err))
	}

	cards := make([]domain.Card, 0, len(models))
	for i := range models {
		cards = append(cards, models[i].toDomain())
	}
	return cards, nil
}

// CountByList implements store.CardStore.CountByList.
func (s *CardStore) CountByList(ctx context.Context, listID uuid.UUID) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&cardModel{}).Where("list_id = ?", listID).Count(&n).Error
	if err != nil {
		return 0, store.NewStoreError("card", "count", "failed to count cards", MapError(err))
	}
	return int(n), nil
}

// Update implements store.CardStore.Update.
func (s *CardStore) Update(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&cardModel{}).Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"list_id":     card.ListID,
			"title":       card.Title,
			"description": card.Description,
			"priority":    string(card.Priority),
			"status":      string(card.Status),
			"position":    card.Position,
			"due_date":    utcPtr(card.DueDate),
			"assigned_to": card.AssignedTo,
			"updated_at":  card.UpdatedAt.UTC(),
		})
	if res.Error != nil {
		return store.NewStoreError("card", "update", "failed to update card",
			mapEntityError(res.Error, nil, store.ErrListReference))
	}
	if res.RowsAffected == 0 {
		return store.ErrCardNotFound
	}
	return nil
}

// Delete implements store.CardStore.Delete.
func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&cardModel{})
	if res.Error != nil {
		return store.NewStoreError("card", "delete", "failed to delete card", MapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrCardNotFound
	}
	return nil
}
