package helper

import (
	"net/http"
	"strings"
)

const (
	MsgInternalServerError = "Internal Server Error"
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Not Found"
	MsgUnauthorized        = "Unauthorized"
	MsgForbidden           = "Forbidden"
	MsgConflict            = "Conflict"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgTooManyRequests     = "Too Many Requests"
)

type AppError struct {
	Code    int
	Message string
	// Details carries per-field validation information when present.
	Details []string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	if message == "" {
		message = MsgBadRequest
	}
	return NewAppError(http.StatusBadRequest, message)
}

// NewValidationError reports the full set of missing or malformed fields
// so the caller can identify every failing field at once.
func NewValidationError(fields []string) *AppError {
	err := NewAppError(http.StatusBadRequest, "Campos requeridos faltantes o inválidos: "+strings.Join(fields, ", "))
	err.Details = fields
	return err
}

func NewInternalServerError(message string) *AppError {
	if message == "" {
		message = MsgInternalServerError
	}
	return NewAppError(http.StatusInternalServerError, message)
}

func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = MsgNotFound
	}
	return NewAppError(http.StatusNotFound, message)
}

func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = MsgUnauthorized
	}
	return NewAppError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = MsgForbidden
	}
	return NewAppError(http.StatusForbidden, message)
}

func NewConflictError(message string) *AppError {
	if message == "" {
		message = MsgConflict
	}
	return NewAppError(http.StatusConflict, message)
}

func NewMethodNotAllowedError(message string) *AppError {
	if message == "" {
		message = MsgMethodNotAllowed
	}
	return NewAppError(http.StatusMethodNotAllowed, message)
}

func NewTooManyRequestsError(message string) *AppError {
	if message == "" {
		message = MsgTooManyRequests
	}
	return NewAppError(http.StatusTooManyRequests, message)
}
