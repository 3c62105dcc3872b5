package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType names the mutation an activity entry records.
type ActivityType string

// Activity types written by the service layer.
const (
	ActivityBoardCreated   ActivityType = "board_created"
	ActivityBoardUpdated   ActivityType = "board_updated"
	ActivityBoardArchived  ActivityType = "board_archived"
	ActivityListCreated    ActivityType = "list_created"
	ActivityListUpdated    ActivityType = "list_updated"
	ActivityListMoved      ActivityType = "list_moved"
	ActivityListArchived   ActivityType = "list_archived"
	ActivityListDeleted    ActivityType = "list_deleted"
	ActivityCardCreated    ActivityType = "card_created"
	ActivityCardUpdated    ActivityType = "card_updated"
	ActivityCardMoved      ActivityType = "card_moved"
	ActivityCardAssigned   ActivityType = "card_assigned"
	ActivityCardDeleted    ActivityType = "card_deleted"
	ActivityCommentAdded   ActivityType = "comment_added"
	ActivityCommentDeleted ActivityType = "comment_deleted"
)

// ActivityLog is one append-only audit entry scoped to a board.
type ActivityLog struct {
	ID          uuid.UUID    `json:"id"`
	BoardID     uuid.UUID    `json:"board_id"`
	UserID      string       `json:"user_id"`
	Type        ActivityType `json:"activity_type"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewActivityLog creates an activity entry stamped with the current time.
func NewActivityLog(boardID uuid.UUID, userID string, activityType ActivityType, description string) (*ActivityLog, error) {
	entry := &ActivityLog{
		ID:          uuid.New(),
		BoardID:     boardID,
		UserID:      userID,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the ActivityLog has valid data.
func (a *ActivityLog) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if a.BoardID == uuid.Nil {
		return NewValidationError("board_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(a.UserID) == "" {
		return NewValidationError("user_id", "cannot be empty", nil)
	}
	if a.Type == "" {
		return NewValidationError("activity_type", "cannot be empty", nil)
	}
	if a.Description == "" {
		return NewValidationError("description", "cannot be empty", nil)
	}
	return nil
}
