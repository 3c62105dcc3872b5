package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
)

// BoardHandler handles board-related HTTP requests
type BoardHandler struct {
	boardService service.BoardService
	logger       *slog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService, logger *slog.Logger) *BoardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BoardHandler")
	}

	return &BoardHandler{
		boardService: boardService,
		logger:       logger.With(slog.String("component", "board_handler")),
	}
}

// CreateBoard handles POST /boards requests
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create board")
		return
	}

	log.Debug("board created", slog.String("board_id", board.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, board)
}

// ListBoards handles GET /boards requests, optionally filtered by owner_id.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	boards, err := h.boardService.ListBoards(r.Context(), store.BoardFilter{
		OwnerID:         strings.TrimSpace(r.URL.Query().Get("owner_id")),
		IncludeArchived: includeArchived,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list boards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, boards)
}

// GetBoard handles GET /boards/{id} requests
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(r.Context(), boardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get board")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// GetBoardFull handles GET /boards/{id}/full requests. Archived lists and
// cards are omitted unless include_archived=true.
func (h *BoardHandler) GetBoardFull(w http.ResponseWriter, r *http.Request) {
	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	full, err := h.boardService.GetBoardFull(r.Context(), boardID, includeArchived)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get board")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, full)
}

// UpdateBoard handles PUT and PATCH /boards/{id} requests
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	board, err := h.boardService.UpdateBoard(r.Context(), boardID, req.patch(), userIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update board")
		return
	}

	log.Debug("board updated", slog.String("board_id", boardID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// ArchiveBoard handles POST /boards/{id}/archive requests
func (h *BoardHandler) ArchiveBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	board, err := h.boardService.ArchiveBoard(r.Context(), boardID, userIDParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to archive board")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// DeleteBoard handles DELETE /boards/{id} requests. Lists, cards, comments
// and activity entries of the board are removed with it.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(r.Context(), boardID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete board")
		return
	}

	log.Debug("board deleted", slog.String("board_id", boardID.String()))
	w.WriteHeader(http.StatusNoContent)
}
