package model

import (
	"errors"
	"net/http"
)

var ErrPlatformFeeNotFound = errors.New("platform fee not found")

// GetErrorResponse maps a service error to an HTTP status and caller-safe
// message.
func GetErrorResponse(err error) (int, string) {
	if errors.Is(err, ErrPlatformFeeNotFound) {
		return http.StatusNotFound, "Platform fee not found"
	}
	return http.StatusInternalServerError, "Internal server error"
}
