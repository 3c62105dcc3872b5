package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/redact"
	"github.com/phrazzld/workboard-api/internal/service"
)

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed ID cannot name an existing entity, so it is
// reported as notFound.
func getPathUUID(r *http.Request, paramName string, notFound error) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	id, err := uuid.Parse(pathParam)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", paramName, pathParam, notFound)
	}
	return id, nil
}

// handlePathUUID is getPathUUID that writes the error response itself.
// It returns false when the handler should stop.
func handlePathUUID(w http.ResponseWriter, r *http.Request, paramName string, notFound error) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName, notFound)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be true or false", nil)
	}
	return v, nil
}

// queryInt parses an optional integer query parameter, returning def when
// it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", nil)
	}
	return v, nil
}

// pageParams reads limit and offset for paginated endpoints.
func pageParams(r *http.Request) (limit, offset int, err error) {
	limit, err = queryInt(r, "limit", service.DefaultActivityLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = queryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

// userIDParam returns the acting user from the user_id query parameter.
func userIDParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("user_id"))
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes a 422 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", errInvalidBody, err), "")
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("validation error", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
