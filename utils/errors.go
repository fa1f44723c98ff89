package utils

import (
	"errors"
	"net/http"
)

// Error kinds. Match them with errors.Is against any *AppError.
var (
	ErrValidation         = errors.New("validation error")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrGenerationTimedOut = errors.New("generation timed out")
	ErrInternal           = errors.New("internal error")
)

// AppError is an expected failure that can be shown to the client as is.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func ValidationError(message string) *AppError {
	return newAppError(ErrValidation, message, nil)
}

func UnauthenticatedError(message string) *AppError {
	return newAppError(ErrUnauthenticated, message, nil)
}

func ForbiddenError(message string) *AppError {
	return newAppError(ErrForbidden, message, nil)
}

func NotFoundError(message string) *AppError {
	return newAppError(ErrNotFound, message, nil)
}

func ConflictError(message string) *AppError {
	return newAppError(ErrConflict, message, nil)
}

// GenerationFailedError carries the upstream provider message in Message.
func GenerationFailedError(message string, err error) *AppError {
	return newAppError(ErrGenerationFailed, message, err)
}

func GenerationTimedOutError(message string, err error) *AppError {
	return newAppError(ErrGenerationTimedOut, message, err)
}

// StatusCode maps an error to the HTTP status the API answers with.
// Anything that is not an *AppError is a 500.
func StatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case ErrValidation, ErrConflict:
		return http.StatusBadRequest
	case ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrGenerationTimedOut:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that is safe to send to the client.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != ErrInternal {
		return appErr.Message
	}
	return "Server error"
}
