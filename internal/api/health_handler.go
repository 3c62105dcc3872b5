package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/redact"
)

// healthCheckTimeout bounds the store ping made by GET /health.
const healthCheckTimeout = 2 * time.Second

// Pinger checks that the backing store is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler reports liveness together with store reachability.
type HealthHandler struct {
	ping   Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ping Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		ping:   ping,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests. It answers 503 when the store
// cannot be pinged.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			logger.FromContextOrDefault(r.Context(), h.logger).Warn("store health check failed",
				slog.String("error", redact.Error(err)))
			shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unavailable",
				Database: "unreachable",
			})
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
