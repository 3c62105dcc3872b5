package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/workboard-api/internal/api/shared"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/store"
)

// errInvalidBody marks request bodies that could not be decoded as JSON.
var errInvalidBody = errors.New("invalid request body")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// A write named a parent that does not exist
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, errInvalidBody),
		errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity

	// Default: internal server error, including an unavailable store
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	case errors.Is(err, store.ErrBoardNotFound):
		return "Board not found"
	case errors.Is(err, store.ErrListNotFound):
		return "List not found"
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrBoardReference):
		return "Referenced board does not exist"
	case errors.Is(err, store.ErrListReference):
		return "Referenced list does not exist"
	case errors.Is(err, store.ErrCardReference):
		return "Referenced card does not exist"
	case errors.Is(err, store.ErrInvalidReference):
		return "Referenced entity does not exist"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, errInvalidBody):
		return "Invalid request format"
	case errors.As(err, &domainErr):
		if domainErr.Field == "" {
			return domainErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, store.ErrStoreUnavailable):
		return "Service temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field. Anything else becomes "Validation error".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	field := fe.Field()
	if field == "" {
		return "Validation error"
	}
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag(), fe.Param()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "must be at least " + param
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(param), ", ")
	case "uuid":
		return "must be a UUID"
	case "rgbhex":
		return "must be a #RRGGBB color"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. fallbackMsg replaces the
// generic message for 5xx responses when given.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError && fallbackMsg != "" {
		message = fallbackMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
