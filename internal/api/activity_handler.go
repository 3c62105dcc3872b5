package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
)

// ActivityHandler serves a board's activity log.
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService service.ActivityService, logger *slog.Logger) *ActivityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ActivityHandler")
	}

	return &ActivityHandler{
		activityService: activityService,
		logger:          logger.With(slog.String("component", "activity_handler")),
	}
}

// BoardActivities handles GET /boards/{id}/activities requests, most recent
// entry first.
func (h *ActivityHandler) BoardActivities(w http.ResponseWriter, r *http.Request) {
	boardID, ok := handlePathUUID(w, r, "id", store.ErrBoardNotFound)
	if !ok {
		return
	}

	limit, offset, err := pageParams(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entries, err := h.activityService.BoardActivities(r.Context(), boardID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get activities")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
