// Package compose is the deterministic composition engine: note
// normalization, seed derivation, rotating selection, and assembly of the
// English, Chinese, bilingual, and caption views.
package compose

import (
	"fmt"

	"github.com/JaimeStill/weekly/internal/catalog"
)

// Mode controls how injected note fragments combine with a section pool.
type Mode string

const (
	// Pinned places injected lines at the head of the section and fills the
	// remaining count from the rotated pool.
	Pinned Mode = "pinned"
	// Rotated prepends injected lines to the pool and rotates the result, so
	// an injected line may be rotated out of the section.
	Rotated Mode = "rotated"
)

// ParseMode validates a mode name. An empty name selects Pinned.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Pinned:
		return Pinned, nil
	case Rotated:
		return Rotated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Options configures an Assembler.
type Options struct {
	Mode Mode
	// SymmetricFragments enables injections marked symmetric in the catalog,
	// giving the Chinese narrative the same reminder slot as English.
	SymmetricFragments bool
}

// Assembler builds documents from an immutable catalog. It holds no mutable
// state and is safe for concurrent use.
type Assembler struct {
	catalog *catalog.Catalog
	opts    Options
}

// NewAssembler creates an Assembler over c.
func NewAssembler(c *catalog.Catalog, opts Options) *Assembler {
	if opts.Mode == "" {
		opts.Mode = Pinned
	}
	return &Assembler{catalog: c, opts: opts}
}

// Options returns the assembler configuration.
func (a *Assembler) Options() Options {
	return a.opts
}

// Compose normalizes notes, derives the seed, and assembles the document.
func (a *Assembler) Compose(template, tone, notes string) (*Document, Seed, error) {
	cleaned, fragments, err := Normalize(notes)
	if err != nil {
		return nil, 0, err
	}
	seed := DeriveSeed(template, tone, cleaned)
	doc, err := a.Assemble(template, tone, cleaned, fragments, seed)
	if err != nil {
		return nil, 0, err
	}
	return doc, seed, nil
}

// Assemble renders both narratives and the captions for an already
// normalized request.
func (a *Assembler) Assemble(template, tone, cleaned string, fragments []string, seed Seed) (*Document, error) {
	tpl, err := a.catalog.Template(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, template)
	}
	tp, err := a.catalog.Tone(tone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, tone)
	}

	english, err := a.narrative(catalog.English, tpl, tp, cleaned, fragments, seed)
	if err != nil {
		return nil, err
	}
	chinese, err := a.narrative(catalog.Chinese, tpl, tp, cleaned, fragments, seed)
	if err != nil {
		return nil, err
	}

	return newDocument(english, chinese, Captions(tpl.Name, tp.Caption, cleaned, fragments)), nil
}

func (a *Assembler) narrative(
	lang catalog.Language,
	tpl catalog.Template,
	tone catalog.Tone,
	cleaned string,
	fragments []string,
	seed Seed,
) (*Narrative, error) {
	loc, ok := a.catalog.Locale(lang)
	if !ok {
		return nil, fmt.Errorf("no locale for %q", lang)
	}

	n := &Narrative{
		Language:        lang,
		GreetingHeading: loc.Headings.Greeting,
		Greeting:        tone.Greeting[lang],
		ClosingHeading:  loc.Headings.Closing,
		Closing:         tone.Closing[lang],
	}
	if loc.NotesTrailer != "" {
		n.Trailer = fmt.Sprintf(loc.NotesTrailer, cleaned)
	}

	for _, s := range catalog.Sections {
		lines := a.pick(
			tpl.Lines(lang, s),
			a.injected(loc, s, fragments),
			tone.Counts.Get(s),
			int(seed)+loc.Offsets.Get(s),
		)

		b := Block{Section: s, Heading: loc.Headings.Of(s), Lines: lines, Bulleted: s != catalog.NextWeek}
		if s == catalog.Homework && len(lines) == 0 {
			b.Lines = []string{loc.NoHomework}
			b.Bulleted = false
		}
		n.Blocks = append(n.Blocks, b)
	}

	return n, nil
}

// injected returns the fragment rewrites targeting section s, in catalog order.
func (a *Assembler) injected(loc catalog.Locale, s catalog.Section, fragments []string) []string {
	var lines []string
	for _, inj := range loc.Injections {
		if inj.Section != s || inj.Fragment >= len(fragments) {
			continue
		}
		if inj.Symmetric && !a.opts.SymmetricFragments {
			continue
		}

		text := Shorten(fragments[inj.Fragment], loc.FragmentLimit)
		if loc.Sentence {
			text = Sentence(text)
		}
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(inj.Format, text))
	}
	return lines
}

func (a *Assembler) pick(pool, lead []string, count, offset int) []string {
	if len(lead) == 0 {
		return Select(pool, count, offset)
	}

	if a.opts.Mode == Rotated {
		return Select(append(lead, pool...), count, offset)
	}

	if count <= 0 {
		return []string{}
	}
	if len(lead) >= count {
		return lead[:count]
	}
	return append(lead, Select(pool, count-len(lead), offset)...)
}
