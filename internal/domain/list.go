package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// List is a named, ordered column within a board.
// Position orders lists inside their board; values need not be contiguous.
type List struct {
	ID         uuid.UUID `json:"id"`
	BoardID    uuid.UUID `json:"board_id"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewList creates a new List in the given board.
func NewList(boardID uuid.UUID, name string, position int) (*List, error) {
	now := time.Now().UTC()
	list := &List{
		ID:        uuid.New(),
		BoardID:   boardID,
		Name:      name,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the List has valid data.
func (l *List) Validate() error {
	if l.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if l.BoardID == uuid.Nil {
		return NewValidationError("board_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(l.Name) == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if l.Position < 0 {
		return NewValidationError("position", "must not be negative", ErrInvalidPosition)
	}
	return nil
}

// ListPatch lists the fields a partial list update may change.
type ListPatch struct {
	Name       *string
	Position   *int
	IsArchived *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ListPatch) IsEmpty() bool {
	return p.Name == nil && p.Position == nil && p.IsArchived == nil
}

// OnlyMoves reports whether the patch only repositions the list.
func (p ListPatch) OnlyMoves() bool {
	return p.Position != nil && p.Name == nil && p.IsArchived == nil
}

// Archives reports whether the patch archives the list.
func (p ListPatch) Archives() bool {
	return p.IsArchived != nil && *p.IsArchived
}

// Apply copies the supplied fields onto the list and bumps UpdatedAt.
func (l *List) Apply(p ListPatch) error {
	next := *l
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Position != nil {
		next.Position = *p.Position
	}
	if p.IsArchived != nil {
		next.IsArchived = *p.IsArchived
	}
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*l = next
	return nil
}

// ListWithCards is a list with its cards ordered by position.
type ListWithCards struct {
	List
	Cards []Card `json:"cards"`
}
