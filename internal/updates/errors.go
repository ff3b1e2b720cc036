package updates

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/weekly/internal/compose"
)

// Boundary rejections. Each maps to one distinct client-facing message.
var (
	ErrInvalidJSON      = errors.New("invalid JSON body")
	ErrInvalidFieldType = errors.New("invalid field type")
	ErrUnknownTemplate  = errors.New("please choose a valid template")
	ErrUnknownTone      = errors.New("please choose a valid tone")
	ErrEmptyNotes       = compose.ErrEmptyNotes
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrEmptyBatch       = errors.New("batch contains no requests")
)

// MapHTTPStatus maps update errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrInvalidFieldType),
		errors.Is(err, ErrUnknownTemplate),
		errors.Is(err, ErrUnknownTone),
		errors.Is(err, ErrEmptyNotes),
		errors.Is(err, ErrEmptyBatch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
