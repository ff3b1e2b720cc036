package updates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JaimeStill/weekly/internal/catalog"
	"github.com/JaimeStill/weekly/internal/compose"
)

// Request is a validated-shape composition request.
type Request struct {
	Template string `json:"template" yaml:"template"`
	Tone     string `json:"tone" yaml:"tone"`
	Notes    string `json:"notes" yaml:"notes"`
}

var requestFields = []string{"template", "tone", "notes"}

// UnmarshalJSON requires template, tone, and notes to be present JSON
// strings and reports the first offending field with ErrInvalidFieldType.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidJSON
	}

	values := make(map[string]string, len(requestFields))
	for _, field := range requestFields {
		var s string
		v, ok := raw[field]
		if !ok || json.Unmarshal(v, &s) != nil || string(v) == "null" {
			return fmt.Errorf("%w: %s must be a string", ErrInvalidFieldType, field)
		}
		values[field] = s
	}

	*r = Request{
		Template: values["template"],
		Tone:     values["tone"],
		Notes:    values["notes"],
	}
	return nil
}

// DecodeRequest reads exactly one JSON request from body.
func DecodeRequest(body io.Reader) (Request, error) {
	var req Request
	if err := decodeJSON(body, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// decodeJSON decodes a single JSON value into v and rejects anything but
// whitespace after it.
func decodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	case errors.Is(err, ErrInvalidFieldType), errors.Is(err, ErrInvalidJSON):
		return err
	}
	return ErrInvalidJSON
}

// Validate checks the request against c in boundary order: template, tone,
// then notes.
func (r Request) Validate(c *catalog.Catalog) error {
	if _, err := c.Template(r.Template); err != nil {
		return ErrUnknownTemplate
	}
	if _, err := c.Tone(r.Tone); err != nil {
		return ErrUnknownTone
	}
	if compose.Clean(r.Notes) == "" {
		return ErrEmptyNotes
	}
	return nil
}
