package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a note left on a card by a user.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment creates a new Comment on the given card.
func NewComment(cardID uuid.UUID, userID, content string) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		ID:        uuid.New(),
		CardID:    cardID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if c.CardID == uuid.Nil {
		return NewValidationError("card_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(c.UserID) == "" {
		return NewValidationError("user_id", "cannot be empty", nil)
	}
	if strings.TrimSpace(c.Content) == "" {
		return NewValidationError("content", "cannot be empty", nil)
	}
	return nil
}
