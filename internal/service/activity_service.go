package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
)

// Page size bounds for activity queries.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 100
)

// ActivityService provides read access to board activity logs.
type ActivityService interface {
	// BoardActivities returns up to limit entries of a board's log, most
	// recent first, skipping the first offset. limit must be within
	// 1..MaxActivityLimit.
	// Returns store.ErrBoardNotFound if the board does not exist.
	BoardActivities(ctx context.Context, boardID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error)
}

type activityServiceImpl struct {
	boards     store.BoardStore
	activities store.ActivityStore
	logger     *slog.Logger
}

// NewActivityService creates a new ActivityService
// It returns an error if any of the required dependencies are nil.
func NewActivityService(
	boards store.BoardStore,
	activities store.ActivityStore,
	logger *slog.Logger,
) (ActivityService, error) {
	if boards == nil {
		return nil, domain.NewValidationError("boards", "cannot be nil", domain.ErrValidation)
	}
	if activities == nil {
		return nil, domain.NewValidationError("activities", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &activityServiceImpl{
		boards:     boards,
		activities: activities,
		logger:     logger.With(slog.String("component", "activity_service")),
	}, nil
}

func (s *activityServiceImpl) BoardActivities(
	ctx context.Context,
	boardID uuid.UUID,
	limit, offset int,
) ([]domain.ActivityLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", boardID.String())

	if limit < 1 || limit > MaxActivityLimit {
		err := domain.NewValidationError("limit", "must be between 1 and 100", ErrInvalidLimit)
		return nil, fail(ctx, log, activityServiceName, "list", "invalid page", err, attr)
	}
	if offset < 0 {
		err := domain.NewValidationError("offset", "must not be negative", nil)
		return nil, fail(ctx, log, activityServiceName, "list", "invalid page", err, attr)
	}

	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, fail(ctx, log, activityServiceName, "list", "failed to retrieve board", err, attr)
	}
	entries, err := s.activities.ListByBoard(ctx, boardID, limit, offset)
	if err != nil {
		return nil, fail(ctx, log, activityServiceName, "list", "failed to list activities", err, attr)
	}
	return entries, nil
}
