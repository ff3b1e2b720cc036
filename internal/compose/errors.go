package compose

import "errors"

var (
	ErrEmptyNotes  = errors.New("notes cannot be empty")
	ErrInvalidMode = errors.New("invalid fragment mode")
)
