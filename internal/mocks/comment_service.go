package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
)

// MockCommentService implements service.CommentService for testing
type MockCommentService struct {
	AddCommentFn     func(ctx context.Context, params service.AddCommentParams) (*domain.Comment, error)
	CommentsByCardFn func(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)
	DeleteCommentFn  func(ctx context.Context, commentID uuid.UUID, userID string) error

	Comment      *domain.Comment
	DefaultError error

	// Call tracking for verification
	AddCommentCalls struct {
		mu     sync.Mutex
		Count  int
		Params []service.AddCommentParams
	}
}

var _ service.CommentService = (*MockCommentService)(nil)

// AddComment implements the CommentService.AddComment method
func (m *MockCommentService) AddComment(ctx context.Context, params service.AddCommentParams) (*domain.Comment, error) {
	m.AddCommentCalls.mu.Lock()
	m.AddCommentCalls.Count++
	m.AddCommentCalls.Params = append(m.AddCommentCalls.Params, params)
	m.AddCommentCalls.mu.Unlock()

	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, params)
	}
	return m.Comment, m.DefaultError
}

// CommentsByCard implements the CommentService.CommentsByCard method
func (m *MockCommentService) CommentsByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
	if m.CommentsByCardFn != nil {
		return m.CommentsByCardFn(ctx, cardID)
	}
	if m.Comment == nil {
		return []domain.Comment{}, m.DefaultError
	}
	return []domain.Comment{*m.Comment}, m.DefaultError
}

// DeleteComment implements the CommentService.DeleteComment method
func (m *MockCommentService) DeleteComment(ctx context.Context, commentID uuid.UUID, userID string) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, commentID, userID)
	}
	return m.DefaultError
}
