package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Board is the root aggregate of the ownership hierarchy.
// Lists, cards, comments and activity entries all hang off a board
// and are removed together with it.
type Board struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	OwnerID     string    `json:"owner_id"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBoard creates a new Board with a generated ID.
// Returns an error if validation fails.
func NewBoard(name string, description, color *string, ownerID string) (*Board, error) {
	now := time.Now().UTC()
	board := &Board{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Color:       color,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	return board, nil
}

// Validate checks if the Board has valid data.
func (b *Board) Validate() error {
	if b.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(b.Name) == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if strings.TrimSpace(b.OwnerID) == "" {
		return NewValidationError("owner_id", "cannot be empty", nil)
	}
	return nil
}

// BoardPatch lists the fields a partial board update may change.
// Nil fields are left untouched.
type BoardPatch struct {
	Name        *string
	Description *string
	Color       *string
	IsArchived  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p BoardPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Color == nil && p.IsArchived == nil
}

// Archives reports whether the patch archives the board.
func (p BoardPatch) Archives() bool {
	return p.IsArchived != nil && *p.IsArchived
}

// Apply copies the supplied fields onto the board and bumps UpdatedAt.
// The board is left unchanged if the result would be invalid.
func (b *Board) Apply(p BoardPatch) error {
	next := *b
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = p.Description
	}
	if p.Color != nil {
		next.Color = p.Color
	}
	if p.IsArchived != nil {
		next.IsArchived = *p.IsArchived
	}
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*b = next
	return nil
}

// BoardWithLists is a board with its lists, each carrying its cards.
type BoardWithLists struct {
	Board
	Lists []ListWithCards `json:"lists"`
}
