package compose

import (
	"regexp"
	"strings"
)

// MaxFragments caps the number of note fragments taken from raw notes.
const MaxFragments = 5

var fragmentBoundary = regexp.MustCompile(`\r?\n|[.;!?。；！？]+`)

// Normalize returns the cleaned notes and up to MaxFragments fragments.
// It fails with ErrEmptyNotes when nothing but whitespace remains.
func Normalize(raw string) (string, []string, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return "", nil, ErrEmptyNotes
	}
	return cleaned, Fragments(raw), nil
}

// Clean joins the non-blank lines of raw with single spaces and collapses
// every whitespace run to one space.
func Clean(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// Fragments splits raw on line breaks and runs of sentence punctuation,
// half- or full-width, keeping the first MaxFragments non-empty pieces in
// order of appearance.
func Fragments(raw string) []string {
	fragments := make([]string, 0, MaxFragments)
	for _, piece := range fragmentBoundary.Split(raw, -1) {
		piece = strings.Join(strings.Fields(piece), " ")
		if piece == "" {
			continue
		}
		fragments = append(fragments, piece)
		if len(fragments) == MaxFragments {
			break
		}
	}
	return fragments
}
