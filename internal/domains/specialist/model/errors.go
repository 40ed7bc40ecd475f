package model

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeSpecialistNotFound ErrorCode = "SPECIALIST_NOT_FOUND"
	ErrCodeEmailConflict      ErrorCode = "EMAIL_ALREADY_EXISTS"
	ErrCodeInternalError      ErrorCode = "SYS_INTERNAL_ERROR"
)

// AppError is a typed domain error carrying its HTTP mapping, so handlers
// translate without inspecting message text.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrSpecialistNotFound = &AppError{
		Code:       ErrCodeSpecialistNotFound,
		Message:    "Specialist not found",
		HTTPStatus: http.StatusNotFound,
	}

	// Conflicts answer 400, not 409, preserving the established wire
	// behavior of this API.
	ErrEmailAlreadyExists = &AppError{
		Code:       ErrCodeEmailConflict,
		Message:    "Specialist with this email already exists",
		HTTPStatus: http.StatusBadRequest,
	}
)

// GetErrorResponse maps a service error to an HTTP status and caller-safe
// message. Unknown errors (storage failures included) collapse to a generic
// 500 so no internal detail leaks.
func GetErrorResponse(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
