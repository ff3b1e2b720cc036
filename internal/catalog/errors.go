package catalog

import "errors"

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownTone     = errors.New("unknown tone")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)
