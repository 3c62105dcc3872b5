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

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService service.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		commentService: commentService,
		logger:         logger.With(slog.String("component", "comment_handler")),
	}
}

// AddComment handles POST /comments requests. The author is taken from the
// body's user_id.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.commentService.AddComment(r.Context(), service.AddCommentParams{
		CardID:  uuid.MustParse(req.CardID),
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add comment")
		return
	}

	log.Debug("comment added",
		slog.String("comment_id", comment.ID.String()),
		slog.String("card_id", comment.CardID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// DeleteComment handles DELETE /comments/{id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := handlePathUUID(w, r, "id", store.ErrCommentNotFound)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), commentID, userIDParam(r)); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
