package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
)

// MockBoardService implements service.BoardService for testing
type MockBoardService struct {
	// Custom behavior functions
	CreateBoardFn  func(ctx context.Context, params service.CreateBoardParams) (*domain.Board, error)
	GetBoardFn     func(ctx context.Context, boardID uuid.UUID) (*domain.Board, error)
	GetBoardFullFn func(ctx context.Context, boardID uuid.UUID, includeArchived bool) (*domain.BoardWithLists, error)
	ListBoardsFn   func(ctx context.Context, filter store.BoardFilter) ([]domain.Board, error)
	UpdateBoardFn  func(ctx context.Context, boardID uuid.UUID, patch domain.BoardPatch, userID string) (*domain.Board, error)
	ArchiveBoardFn func(ctx context.Context, boardID uuid.UUID, userID string) (*domain.Board, error)
	DeleteBoardFn  func(ctx context.Context, boardID uuid.UUID) error

	// Default return values
	Board        *domain.Board
	DefaultError error
}

var _ service.BoardService = (*MockBoardService)(nil)

// CreateBoard implements the BoardService.CreateBoard method
func (m *MockBoardService) CreateBoard(ctx context.Context, params service.CreateBoardParams) (*domain.Board, error) {
	if m.CreateBoardFn != nil {
		return m.CreateBoardFn(ctx, params)
	}
	return m.Board, m.DefaultError
}

// GetBoard implements the BoardService.GetBoard method
func (m *MockBoardService) GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	if m.GetBoardFn != nil {
		return m.GetBoardFn(ctx, boardID)
	}
	return m.Board, m.DefaultError
}

// GetBoardFull implements the BoardService.GetBoardFull method
func (m *MockBoardService) GetBoardFull(
	ctx context.Context,
	boardID uuid.UUID,
	includeArchived bool,
) (*domain.BoardWithLists, error) {
	if m.GetBoardFullFn != nil {
		return m.GetBoardFullFn(ctx, boardID, includeArchived)
	}
	if m.Board == nil {
		return nil, m.DefaultError
	}
	return &domain.BoardWithLists{Board: *m.Board, Lists: []domain.ListWithCards{}}, m.DefaultError
}

// ListBoards implements the BoardService.ListBoards method
func (m *MockBoardService) ListBoards(ctx context.Context, filter store.BoardFilter) ([]domain.Board, error) {
	if m.ListBoardsFn != nil {
		return m.ListBoardsFn(ctx, filter)
	}
	if m.Board == nil {
		return []domain.Board{}, m.DefaultError
	}
	return []domain.Board{*m.Board}, m.DefaultError
}

// UpdateBoard implements the BoardService.UpdateBoard method
func (m *MockBoardService) UpdateBoard(
	ctx context.Context,
	boardID uuid.UUID,
	patch domain.BoardPatch,
	userID string,
) (*domain.Board, error) {
	if m.UpdateBoardFn != nil {
		return m.UpdateBoardFn(ctx, boardID, patch, userID)
	}
	return m.Board, m.DefaultError
}

// ArchiveBoard implements the BoardService.ArchiveBoard method
func (m *MockBoardService) ArchiveBoard(ctx context.Context, boardID uuid.UUID, userID string) (*domain.Board, error) {
	if m.ArchiveBoardFn != nil {
		return m.ArchiveBoardFn(ctx, boardID, userID)
	}
	return m.Board, m.DefaultError
}

// DeleteBoard implements the BoardService.DeleteBoard method
func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteBoardFn != nil {
		return m.DeleteBoardFn(ctx, boardID)
	}
	return m.DefaultError
}
