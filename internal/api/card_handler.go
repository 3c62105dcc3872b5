package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardService    service.CardService
	commentService service.CommentService
	logger         *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(
	cardService service.CardService,
	commentService service.CommentService,
	logger *slog.Logger,
) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService:    cardService,
		commentService: commentService,
		logger:         logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), service.CreateCardParams{
		ListID:      uuid.MustParse(req.ListID),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priorityPtr(req.Priority),
		Status:      statusPtr(req.Status),
		Position:    req.Position,
		DueDate:     req.DueDate.ptr(),
		AssignedTo:  req.AssignedTo,
		UserID:      userIDParam(r),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create card")
		return
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("list_id", card.ListID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// GetCard handles GET /cards/{id} requests
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := handlePathUUID(w, r, "id", store.ErrCardNotFound)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// CardsByList handles GET /lists/{id}/cards requests
func (h *CardHandler) CardsByList(w http.ResponseWriter, r *http.Request) {
	listID, ok := handlePathUUID(w, r, "id", store.ErrListNotFound)
	if !ok {
		return
	}

	cards, err := h.cardService.CardsByList(r.Context(), listID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// CardsByAssignee handles GET /cards?assigned_to= requests
func (h *CardHandler) CardsByAssignee(w http.ResponseWriter, r *http.Request) {
	assignee := strings.TrimSpace(r.URL.Query().Get("assigned_to"))
	if assignee == "" {
		HandleAPIError(w, r, domain.NewValidationError("assigned_to", "is required", nil), "")
		return
	}

	cards, err := h.cardService.CardsByAssignee(r.Context(), assignee)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// UpdateCard handles PUT and PATCH /cards/{id} requests. A list_id in the
// body moves the card to that list.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := handlePathUUID(w, r, "id", store.ErrCardNotFound)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.cardService.UpdateCard(r.Context(), cardID, req.patch(), userIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// MoveCard handles POST /cards/{id}/move requests
func (h *CardHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", store.ErrCardNotFound)
	if !ok {
		return
	}

	var req MoveCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.cardService.MoveCard(r.Context(), cardID, service.MoveCardParams{
		ListID:   uuid.MustParse(req.ListID),
		Status:   statusPtr(req.Status),
		Position: req.Position,
	}, userIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to move card")
		return
	}

	log.Debug("card moved",
		slog.String("card_id", cardID.String()),
		slog.String("list_id", card.ListID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/{id} requests
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := handlePathUUID(w, r, "id", store.ErrCardNotFound)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), cardID, userIDParam(r)); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CardComments handles GET /cards/{id}/comments requests
func (h *CardHandler) CardComments(w http.ResponseWriter, r *http.Request) {
	cardID, ok := handlePathUUID(w, r, "id", store.ErrCardNotFound)
	if !ok {
		return
	}

	comments, err := h.commentService.CommentsByCard(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}
