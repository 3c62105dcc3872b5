package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardPriority ranks how urgent a card is.
type CardPriority string

// Known card priorities.
const (
	PriorityLow    CardPriority = "low"
	PriorityMedium CardPriority = "medium"
	PriorityHigh   CardPriority = "high"
	PriorityUrgent CardPriority = "urgent"
)

// IsValid reports whether p is one of the known priorities.
func (p CardPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// CardStatus is the workflow state of a card.
type CardStatus string

// Known card statuses. New states are added here and in the request validators.
const (
	StatusTodo       CardStatus = "todo"
	StatusInProgress CardStatus = "in_progress"
	StatusDone       CardStatus = "done"
)

// IsValid reports whether s is one of the known statuses.
func (s CardStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Card represents a task inside a list.
type Card struct {
	ID          uuid.UUID    `json:"id"`
	ListID      uuid.UUID    `json:"list_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    CardPriority `json:"priority"`
	Status      CardStatus   `json:"status"`
	Position    int          `json:"position"`
	DueDate     *time.Time   `json:"due_date"`
	AssignedTo  *string      `json:"assigned_to"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewCard creates a new Card in the given list with default priority and
// status. Callers set optional fields before validating again or storing.
func NewCard(listID uuid.UUID, title string, position int) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		ListID:    listID,
		Title:     title,
		Priority:  PriorityMedium,
		Status:    StatusTodo,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if c.ListID == uuid.Nil {
		return NewValidationError("list_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(c.Title) == "" {
		return NewValidationError("title", "cannot be empty", nil)
	}
	if !c.Priority.IsValid() {
		return NewValidationError("priority", "is not a known priority", ErrInvalidPriority)
	}
	if !c.Status.IsValid() {
		return NewValidationError("status", "is not a known status", ErrInvalidStatus)
	}
	if c.Position < 0 {
		return NewValidationError("position", "must not be negative", ErrInvalidPosition)
	}
	return nil
}

// CardPatch lists the fields a partial card update may change.
// A non-nil ListID turns the update into a move. ClearDueDate removes the
// due date and wins over DueDate.
type CardPatch struct {
	Title        *string
	Description  *string
	Priority     *CardPriority
	Status       *CardStatus
	Position     *int
	DueDate      *time.Time
	ClearDueDate bool
	AssignedTo   *string
	ListID       *uuid.UUID
}

// IsEmpty reports whether the patch changes nothing.
func (p CardPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.Position == nil && p.DueDate == nil &&
		!p.ClearDueDate && p.AssignedTo == nil && p.ListID == nil
}

// OnlyAssigns reports whether the patch only changes the assignee.
func (p CardPatch) OnlyAssigns() bool {
	if p.AssignedTo == nil {
		return false
	}
	rest := p
	rest.AssignedTo = nil
	return rest.IsEmpty()
}

// Apply copies the supplied fields onto the card and bumps UpdatedAt.
// ListID is applied too; verifying that the target list exists is the
// caller's job.
func (c *Card) Apply(p CardPatch) error {
	next := *c
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Description != nil {
		next.Description = p.Description
	}
	if p.Priority != nil {
		next.Priority = *p.Priority
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Position != nil {
		next.Position = *p.Position
	}
	switch {
	case p.ClearDueDate:
		next.DueDate = nil
	case p.DueDate != nil:
		due := p.DueDate.UTC()
		next.DueDate = &due
	}
	if p.AssignedTo != nil {
		// An empty assignee clears the assignment.
		next.AssignedTo = p.AssignedTo
		if *p.AssignedTo == "" {
			next.AssignedTo = nil
		}
	}
	if p.ListID != nil {
		next.ListID = *p.ListID
	}
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*c = next
	return nil
}
