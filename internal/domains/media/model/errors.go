package model

import (
	"errors"
	"net/http"
)

var ErrMediaNotFound = errors.New("media not found")

func GetErrorResponse(err error) (int, string) {
	if errors.Is(err, ErrMediaNotFound) {
		return http.StatusNotFound, "Media not found"
	}
	return http.StatusInternalServerError, "Internal server error"
}
