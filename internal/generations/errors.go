package generations

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("generation not found")
	ErrDuplicate = errors.New("generation already exists")
	ErrInvalidID = errors.New("invalid generation id")
)

// MapHTTPStatus maps generation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
