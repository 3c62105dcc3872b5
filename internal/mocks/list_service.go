package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
)

// MockListService implements service.ListService for testing
type MockListService struct {
	CreateListFn   func(ctx context.Context, params service.CreateListParams) (*domain.List, error)
	GetListFn      func(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	GetListFullFn  func(ctx context.Context, listID uuid.UUID) (*domain.ListWithCards, error)
	ListsByBoardFn func(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)
	UpdateListFn   func(ctx context.Context, listID uuid.UUID, patch domain.ListPatch, userID string) (*domain.List, error)
	DeleteListFn   func(ctx context.Context, listID uuid.UUID, userID string) error

	List         *domain.List
	DefaultError error
}

var _ service.ListService = (*MockListService)(nil)

// CreateList implements the ListService.CreateList method
func (m *MockListService) CreateList(ctx context.Context, params service.CreateListParams) (*domain.List, error) {
	if m.CreateListFn != nil {
		return m.CreateListFn(ctx, params)
	}
	return m.List, m.DefaultError
}

// GetList implements the ListService.GetList method
func (m *MockListService) GetList(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	if m.GetListFn != nil {
		return m.GetListFn(ctx, listID)
	}
	return m.List, m.DefaultError
}

// GetListFull implements the ListService.GetListFull method
func (m *MockListService) GetListFull(ctx context.Context, listID uuid.UUID) (*domain.ListWithCards, error) {
	if m.GetListFullFn != nil {
		return m.GetListFullFn(ctx, listID)
	}
	if m.List == nil {
		return nil, m.DefaultError
	}
	return &domain.ListWithCards{List: *m.List, Cards: []domain.Card{}}, m.DefaultError
}

// ListsByBoard implements the ListService.ListsByBoard method
func (m *MockListService) ListsByBoard(
	ctx context.Context,
	boardID uuid.UUID,
	includeArchived bool,
) ([]domain.List, error) {
	if m.ListsByBoardFn != nil {
		return m.ListsByBoardFn(ctx, boardID, includeArchived)
	}
	if m.List == nil {
		return []domain.List{}, m.DefaultError
	}
	return []domain.List{*m.List}, m.DefaultError
}

// UpdateList implements the ListService.UpdateList method
func (m *MockListService) UpdateList(
	ctx context.Context,
	listID uuid.UUID,
	patch domain.ListPatch,
	userID string,
) (*domain.List, error) {
	if m.UpdateListFn != nil {
		return m.UpdateListFn(ctx, listID, patch, userID)
	}
	return m.List, m.DefaultError
}

// DeleteList implements the ListService.DeleteList method
func (m *MockListService) DeleteList(ctx context.Context, listID uuid.UUID, userID string) error {
	if m.DeleteListFn != nil {
		return m.DeleteListFn(ctx, listID, userID)
	}
	return m.DefaultError
}
