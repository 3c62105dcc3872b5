package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/service"
)

// Board requests

// CreateBoardRequest defines the payload for POST /boards.
type CreateBoardRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color"       validate:"omitempty,rgbhex"`
	OwnerID     string  `json:"owner_id"    validate:"required,max=100"`
}

func (req CreateBoardRequest) params() service.CreateBoardParams {
	return service.CreateBoardParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		OwnerID:     req.OwnerID,
	}
}

// UpdateBoardRequest defines the payload for PUT and PATCH /boards/{id}.
// Absent and null fields are left unchanged.
type UpdateBoardRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color"       validate:"omitempty,rgbhex"`
	IsArchived  *bool   `json:"is_archived"`
}

func (req UpdateBoardRequest) patch() domain.BoardPatch {
	return domain.BoardPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsArchived:  req.IsArchived,
	}
}

// List requests

// CreateListRequest defines the payload for POST /lists.
type CreateListRequest struct {
	BoardID  string `json:"board_id" validate:"required,uuid"`
	Name     string `json:"name"     validate:"required,max=100"`
	Position *int   `json:"position" validate:"omitempty,gte=0"`
}

// UpdateListRequest defines the payload for PUT and PATCH /lists/{id}.
type UpdateListRequest struct {
	Name       *string `json:"name"        validate:"omitempty,max=100"`
	Position   *int    `json:"position"    validate:"omitempty,gte=0"`
	IsArchived *bool   `json:"is_archived"`
}

func (req UpdateListRequest) patch() domain.ListPatch {
	return domain.ListPatch{
		Name:       req.Name,
		Position:   req.Position,
		IsArchived: req.IsArchived,
	}
}

// Card requests

// CreateCardRequest defines the payload for POST /cards.
type CreateCardRequest struct {
	ListID      string  `json:"list_id"     validate:"required,uuid"`
	Title       string  `json:"title"       validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	Position    *int    `json:"position"    validate:"omitempty,gte=0"`
	DueDate     DueDate `json:"due_date"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=100"`
}

// UpdateCardRequest defines the payload for PUT and PATCH /cards/{id}.
// Setting list_id moves the card; an empty assigned_to unassigns it and a
// null or empty due_date clears it.
type UpdateCardRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	Position    *int    `json:"position"    validate:"omitempty,gte=0"`
	DueDate     DueDate `json:"due_date"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=100"`
	ListID      *string `json:"list_id"     validate:"omitempty,uuid"`
}

func (req UpdateCardRequest) patch() domain.CardPatch {
	patch := domain.CardPatch{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     priorityPtr(req.Priority),
		Status:       statusPtr(req.Status),
		Position:     req.Position,
		DueDate:      req.DueDate.ptr(),
		ClearDueDate: req.DueDate.clear,
		AssignedTo:   req.AssignedTo,
	}
	if req.ListID != nil {
		// Validation has already rejected malformed IDs; "" parses to nothing.
		if listID, err := uuid.Parse(*req.ListID); err == nil {
			patch.ListID = &listID
		}
	}
	return patch
}

// dueDateLayouts are tried in order. Values without a zone are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DueDate is a card due date as sent by clients. It accepts RFC 3339
// timestamps and plain YYYY-MM-DD dates. An explicit null or "" marks the
// date as cleared; an absent field leaves it unset.
type DueDate struct {
	at    *time.Time
	clear bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	*d = DueDate{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.clear = true
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("due_date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.clear = true
		return nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			d.at = &t
			return nil
		}
	}
	return fmt.Errorf("due_date %q is neither an RFC 3339 timestamp nor a YYYY-MM-DD date", raw)
}

func (d DueDate) ptr() *time.Time {
	if d.clear {
		return nil
	}
	return d.at
}

// MoveCardRequest defines the payload for POST /cards/{id}/move.
type MoveCardRequest struct {
	ListID   string  `json:"list_id"  validate:"required,uuid"`
	Status   *string `json:"status"   validate:"omitempty,oneof=todo in_progress done"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
}

// Comment requests

// CreateCommentRequest defines the payload for POST /comments.
type CreateCommentRequest struct {
	CardID  string `json:"card_id" validate:"required,uuid"`
	UserID  string `json:"user_id" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=1000"`
}

// Responses

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func priorityPtr(s *string) *domain.CardPriority {
	if s == nil {
		return nil
	}
	p := domain.CardPriority(*s)
	return &p
}

func statusPtr(s *string) *domain.CardStatus {
	if s == nil {
		return nil
	}
	st := domain.CardStatus(*s)
	return &st
}
