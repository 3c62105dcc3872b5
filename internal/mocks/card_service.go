package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
)

// MockCardService implements service.CardService for testing
type MockCardService struct {
	// Custom behavior functions
	CreateCardFn      func(ctx context.Context, params service.CreateCardParams) (*domain.Card, error)
	GetCardFn         func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	CardsByListFn     func(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)
	CardsByAssigneeFn func(ctx context.Context, userID string) ([]domain.Card, error)
	UpdateCardFn      func(ctx context.Context, cardID uuid.UUID, patch domain.CardPatch, userID string) (*domain.Card, error)
	MoveCardFn        func(ctx context.Context, cardID uuid.UUID, params service.MoveCardParams, userID string) (*domain.Card, error)
	DeleteCardFn      func(ctx context.Context, cardID uuid.UUID, userID string) error

	// Default return values
	Card         *domain.Card
	DefaultError error
}

var _ service.CardService = (*MockCardService)(nil)

// CreateCard implements the CardService.CreateCard method
func (m *MockCardService) CreateCard(ctx context.Context, params service.CreateCardParams) (*domain.Card, error) {
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, params)
	}
	return m.Card, m.DefaultError
}

// GetCard implements the CardService.GetCard method
func (m *MockCardService) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, cardID)
	}
	return m.Card, m.DefaultError
}

// CardsByList implements the CardService.CardsByList method
func (m *MockCardService) CardsByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	if m.CardsByListFn != nil {
		return m.CardsByListFn(ctx, listID)
	}
	return m.cards(), m.DefaultError
}

// CardsByAssignee implements the CardService.CardsByAssignee method
func (m *MockCardService) CardsByAssignee(ctx context.Context, userID string) ([]domain.Card, error) {
	if m.CardsByAssigneeFn != nil {
		return m.CardsByAssigneeFn(ctx, userID)
	}
	return m.cards(), m.DefaultError
}

// UpdateCard implements the CardService.UpdateCard method
func (m *MockCardService) UpdateCard(
	ctx context.Context,
	cardID uuid.UUID,
	patch domain.CardPatch,
	userID string,
) (*domain.Card, error) {
	if m.UpdateCardFn != nil {
		return m.UpdateCardFn(ctx, cardID, patch, userID)
	}
	return m.Card, m.DefaultError
}

// MoveCard implements the CardService.MoveCard method
func (m *MockCardService) MoveCard(
	ctx context.Context,
	cardID uuid.UUID,
	params service.MoveCardParams,
	userID string,
) (*domain.Card, error) {
	if m.MoveCardFn != nil {
		return m.MoveCardFn(ctx, cardID, params, userID)
	}
	return m.Card, m.DefaultError
}

// DeleteCard implements the CardService.DeleteCard method
func (m *MockCardService) DeleteCard(ctx context.Context, cardID uuid.UUID, userID string) error {
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, cardID, userID)
	}
	return m.DefaultError
}

func (m *MockCardService) cards() []domain.Card {
	if m.Card == nil {
		return []domain.Card{}
	}
	return []domain.Card{*m.Card}
}
