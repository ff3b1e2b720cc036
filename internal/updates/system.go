// Package updates is the composition boundary: request decoding and
// validation, the compose operation, and its HTTP surface.
package updates

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/JaimeStill/weekly/internal/catalog"
	"github.com/JaimeStill/weekly/internal/compose"
	"github.com/JaimeStill/weekly/internal/generations"
)

// System composes weekly updates from validated requests.
type System interface {
	Handler(maxBodySize int64, batchConcurrency int) *Handler

	Compose(ctx context.Context, req Request) (*compose.Document, error)
	Catalog() CatalogInfo
}

// CatalogInfo lists the accepted template and tone names in canonical order.
type CatalogInfo struct {
	Templates []string `json:"templates"`
	Tones     []string `json:"tones"`
}

// Recorder receives metadata for each successful composition.
type Recorder interface {
	Record(ctx context.Context, cmd generations.CreateCommand) (*generations.Generation, error)
}

type composer struct {
	catalog   *catalog.Catalog
	assembler *compose.Assembler
	recorder  Recorder
	logger    *slog.Logger
}

// New creates a System. recorder may be nil, in which case nothing is
// recorded.
func New(
	c *catalog.Catalog,
	opts compose.Options,
	recorder Recorder,
	logger *slog.Logger,
) System {
	return &composer{
		catalog:   c,
		assembler: compose.NewAssembler(c, opts),
		recorder:  recorder,
		logger:    logger.With("system", "updates"),
	}
}

func (s *composer) Handler(maxBodySize int64, batchConcurrency int) *Handler {
	return NewHandler(s, s.logger, maxBodySize, batchConcurrency)
}

func (s *composer) Catalog() CatalogInfo {
	return CatalogInfo{
		Templates: s.catalog.Templates(),
		Tones:     s.catalog.Tones(),
	}
}

// Compose validates req and builds its document. Recording failures are
// logged and never fail the composition.
func (s *composer) Compose(ctx context.Context, req Request) (*compose.Document, error) {
	if err := req.Validate(s.catalog); err != nil {
		return nil, err
	}

	cleaned, fragments, err := compose.Normalize(req.Notes)
	if err != nil {
		return nil, err
	}
	seed := compose.DeriveSeed(req.Template, req.Tone, cleaned)

	doc, err := s.assembler.Assemble(req.Template, req.Tone, cleaned, fragments, seed)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		_, err := s.recorder.Record(ctx, generations.CreateCommand{
			Template:    req.Template,
			Tone:        req.Tone,
			Seed:        int(seed),
			Fragments:   len(fragments),
			NotesLength: utf8.RuneCountInString(cleaned),
		})
		if err != nil {
			s.logger.Warn("generation not recorded", "error", err)
		}
	}

	return doc, nil
}
