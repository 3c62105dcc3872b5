package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var activitiesRecorded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "workboard_activities_recorded_total",
		Help: "Total number of activity log entries committed",
	},
	[]string{"activity_type"},
)

// ActivityRecorder runs mutations in a transaction together with the
// activity entries describing them.
type ActivityRecorder struct {
	db         *gorm.DB
	activities store.ActivityStore
	logger     *slog.Logger
}

// NewActivityRecorder creates a new ActivityRecorder.
// It returns an error if any of the required dependencies are nil.
func NewActivityRecorder(
	db *gorm.DB,
	activities store.ActivityStore,
	logger *slog.Logger,
) (*ActivityRecorder, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if activities == nil {
		return nil, domain.NewValidationError("activities", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActivityRecorder{
		db:         db,
		activities: activities,
		logger:     logger.With(slog.String("component", "activity_recorder")),
	}, nil
}

// TxFn is a mutation run by ActivityRecorder.Run. It must record exactly
// one activity through rec before returning nil.
type TxFn func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error

// Run executes fn within a transaction. Entries recorded through the
// TxRecorder are written in the same transaction, so a failed log write
// rolls back the mutation. Recorded entries are counted once the
// transaction commits.
func (r *ActivityRecorder) Run(ctx context.Context, fn TxFn) error {
	var rec *TxRecorder
	err := store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *gorm.DB) error {
		rec = &TxRecorder{activities: r.activities.WithTx(tx)}
		return fn(ctx, tx, rec)
	})
	if err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, r.logger)
	for _, entry := range rec.recorded {
		activitiesRecorded.WithLabelValues(string(entry.Type)).Inc()
		log.Debug("activity recorded",
			slog.String("board_id", entry.BoardID.String()),
			slog.String("activity_type", string(entry.Type)))
	}
	return nil
}

// Snapshot runs fn in a read-only transaction for multi-query reads that
// must agree with each other. Nothing is recorded.
func (r *ActivityRecorder) Snapshot(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return store.RunInSnapshot(ctx, r.db, fn)
}

// TxRecorder writes activity entries inside one transaction.
type TxRecorder struct {
	activities store.ActivityStore
	recorded   []*domain.ActivityLog
}

// Record appends an activity entry to the board's log.
func (r *TxRecorder) Record(
	ctx context.Context,
	boardID uuid.UUID,
	userID string,
	activityType domain.ActivityType,
	description string,
) error {
	entry, err := domain.NewActivityLog(boardID, userID, activityType, description)
	if err != nil {
		return err
	}
	if err := r.activities.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s activity: %w", activityType, err)
	}
	r.recorded = append(r.recorded, entry)
	return nil
}
