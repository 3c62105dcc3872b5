package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
)

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	listService service.ListService
	logger      *slog.Logger
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService service.ListService, logger *slog.Logger) *ListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ListHandler")
	}

	return &ListHandler{
		listService: listService,
		logger:      logger.With(slog.String("component", "list_handler")),
	}
}

// CreateList handles POST /lists requests
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.listService.CreateList(r.Context(), service.CreateListParams{
		BoardID:  uuid.MustParse(req.BoardID),
		Name:     req.Name,
		Position: req.Position,
		UserID:   userIDParam(r),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create list")
		return
	}

	log.Debug("list created",
		slog.String("list_id", list.ID.String()),
		slog.String("board_id", list.BoardID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, list)
}

// GetList handles GET /lists/{id} requests
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, ok := handlePathUUID(w, r, "id", store.ErrListNotFound)
	if !ok {
		return
	}

	list, err := h.listService.GetList(r.Context(), listID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get list")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// GetListFull handles GET /lists/{id}/full requests
func (h *ListHandler) GetListFull(w http.ResponseWriter, r *http.Request) {
	listID, ok := handlePathUUID(w, r, "id", store.ErrListNotFound)
	if !ok {
		return
	}

	full, err := h.listService.GetListFull(r.Context(), listID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get list")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, full)
}

// ListsByBoard handles GET /boards/{id}/lists requests
func (h *ListHandler) ListsByBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	lists, err := h.listService.ListsByBoard(r.Context(), boardID, includeArchived)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list lists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lists)
}

// UpdateList handles PUT and PATCH /lists/{id} requests
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	listID, ok := handlePathUUID(w, r, "id", store.ErrListNotFound)
	if !ok {
		return
	}

	var req UpdateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.listService.UpdateList(r.Context(), listID, req.patch(), userIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update list")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// DeleteList handles DELETE /lists/{id} requests
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, ok := handlePathUUID(w, r, "id", store.ErrListNotFound)
	if !ok {
		return
	}

	if err := h.listService.DeleteList(r.Context(), listID, userIDParam(r)); err != nil {
		HandleAPIError(w, r, err, "Failed to delete list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
