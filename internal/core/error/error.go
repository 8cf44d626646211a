package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
	// DataSourceErrorMessage describes a failed call to the product data source.
	DataSourceErrorMessage = "product data source unavailable"
	// MalformedResponseMessage describes a data source payload that did not match the schema.
	MalformedResponseMessage = "malformed product data"
)

// Catalog error taxonomy. AppError values carry one of these as their Kind so
// callers can branch with errors.Is regardless of the underlying cause.
var (
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	ErrMalformedResponse     = errors.New("malformed response")
	ErrNotFound              = errors.New("not found")
	ErrBadRequest            = errors.New("bad request")
	ErrSuperseded            = errors.New("superseded by a newer query")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Kind    error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Is reports whether the target is the error's Kind or matches the underlying error.
func (e *AppError) Is(target error) bool {
	if e.Kind != nil && e.Kind == target {
		return true
	}
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// WrapDataSource marks a transport failure talking to the product data source.
func WrapDataSource(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Kind:    ErrDataSourceUnavailable,
		Status:  http.StatusBadGateway,
		Message: DataSourceErrorMessage,
	}
}

// WrapMalformed marks a payload that could not be decoded or validated.
func WrapMalformed(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Kind:    ErrMalformedResponse,
		Status:  http.StatusBadGateway,
		Message: MalformedResponseMessage,
	}
}

// FromStatus converts a non-2xx data source status into an AppError.
// 404 and 400 keep their meaning, everything else counts as the source being unavailable.
func FromStatus(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusNotFound:
		return &AppError{Kind: ErrNotFound, Status: status, Message: message}
	case http.StatusBadRequest:
		return &AppError{Kind: ErrBadRequest, Status: status, Message: message}
	default:
		return &AppError{
			Err:     fmt.Errorf("status %d", status),
			Kind:    ErrDataSourceUnavailable,
			Status:  http.StatusBadGateway,
			Message: message,
		}
	}
}

// NotFound builds a 404 AppError with the given message.
func NotFound(message string) error {
	return &AppError{Kind: ErrNotFound, Status: http.StatusNotFound, Message: message}
}

// BadRequest builds a 400 AppError with the given message.
func BadRequest(message string) error {
	return &AppError{Kind: ErrBadRequest, Status: http.StatusBadRequest, Message: message}
}

// StatusOf returns the HTTP status that best describes err.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, ErrDataSourceUnavailable), errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a message that is safe to show to API clients.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if errors.Is(err, ErrSuperseded) {
		return ErrSuperseded.Error()
	}
	return SystemErrorMessage
}
