// Package generations records metadata about successful compositions. Notes
// text and generated documents are never stored.
package generations

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/weekly/pkg/query"
	"github.com/JaimeStill/weekly/pkg/repository"
)

// Generation is one recorded composition.
type Generation struct {
	ID          uuid.UUID `json:"id"`
	Template    string    `json:"template"`
	Tone        string    `json:"tone"`
	Seed        int       `json:"seed"`
	Fragments   int       `json:"fragments"`
	NotesLength int       `json:"notes_length"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the metadata of a composition to record.
type CreateCommand struct {
	Template    string
	Tone        string
	Seed        int
	Fragments   int
	NotesLength int
}

// Filters narrows a listing. Sort takes comma-separated field names from
// the JSON form of Generation, each optionally prefixed with "-".
type Filters struct {
	Template string
	Tone     string
	Sort     string
}

// FiltersFromQuery reads template, tone, and sort from query parameters.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		Template: values.Get("template"),
		Tone:     values.Get("tone"),
		Sort:     values.Get("sort"),
	}
}

var projection = query.NewProjectionMap("generations", "g").
	Project("id", "id").
	Project("template", "template").
	Project("tone", "tone").
	Project("seed", "seed").
	Project("fragments", "fragments").
	Project("notes_length", "notes_length").
	Project("created_at", "created_at")

var defaultSort = []query.SortField{
	{Field: "created_at", Descending: true},
	{Field: "id", Descending: true},
}

const columns = "id, template, tone, seed, fragments, notes_length, created_at"

func scanGeneration(s repository.Scanner) (Generation, error) {
	var g Generation
	err := s.Scan(
		&g.ID,
		&g.Template,
		&g.Tone,
		&g.Seed,
		&g.Fragments,
		&g.NotesLength,
		&g.CreatedAt,
	)
	return g, err
}
