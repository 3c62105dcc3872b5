package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/redact"
	"github.com/phrazzld/workboard-api/internal/store"
)

// ErrInvalidLimit indicates a page size outside the accepted range.
// API layer should map this to HTTP 422 Unprocessable Entity.
var ErrInvalidLimit = errors.New("limit out of range")

// Service names used in ServiceError.
const (
	boardServiceName    = "board"
	listServiceName     = "list"
	cardServiceName     = "card"
	commentServiceName  = "comment"
	activityServiceName = "activity"
)

// ServiceError wraps errors from the services with the operation that failed.
// Store and domain sentinels stay reachable through Unwrap, so callers match
// with errors.Is instead of string comparison.
type ServiceError struct {
	// Service is the service that failed (e.g., "board", "card")
	Service string
	// Op is the operation that failed (e.g., "create", "move")
	Op string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	prefix := fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	}
	return prefix
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op, message string, err error) *ServiceError {
	return &ServiceError{
		Service: service,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// isClientError reports whether err was caused by the request rather than
// by the service or its store.
func isClientError(err error) bool {
	return store.IsNotFoundError(err) ||
		store.IsInvalidReferenceError(err) ||
		errors.Is(err, domain.ErrValidation)
}

// fail logs err and wraps it in a ServiceError. Client errors are logged at
// DEBUG, everything else at ERROR with the message redacted.
func fail(
	ctx context.Context,
	log *slog.Logger,
	service, op, message string,
	err error,
	attrs ...slog.Attr,
) error {
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelDebug
	}
	attrs = append(attrs,
		slog.String("operation", op),
		slog.String("error", redact.Error(err)))
	log.LogAttrs(ctx, level, message, attrs...)

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return err
	}
	return NewServiceError(service, op, message, err)
}
