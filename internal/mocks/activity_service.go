package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
)

// MockActivityService implements service.ActivityService for testing
type MockActivityService struct {
	BoardActivitiesFn func(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error)

	Activities   []domain.ActivityLog
	DefaultError error
}

var _ service.ActivityService = (*MockActivityService)(nil)

// BoardActivities implements the ActivityService.BoardActivities method
func (m *MockActivityService) BoardActivities(
	ctx context.Context,
	boardID uuid.UUID,
	limit, offset int,
) ([]domain.ActivityLog, error) {
	if m.BoardActivitiesFn != nil {
		return m.BoardActivitiesFn(ctx, boardID, limit, offset)
	}
	if m.Activities == nil {
		return []domain.ActivityLog{}, m.DefaultError
	}
	return m.Activities, m.DefaultError
}
