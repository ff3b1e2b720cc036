package compose_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/weekly/internal/compose"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		cleaned   string
		fragments []string
	}{
		{
			name:      "two lines",
			raw:       "Students reviewed fractions.\nSome forgot calculators.",
			cleaned:   "Students reviewed fractions. Some forgot calculators.",
			fragments: []string{"Students reviewed fractions", "Some forgot calculators"},
		},
		{
			name:      "blank lines and runs of spaces",
			raw:       "  Math   quiz went well  \r\n\r\n\t Reading\tlogs due  ",
			cleaned:   "Math quiz went well Reading logs due",
			fragments: []string{"Math quiz went well", "Reading logs due"},
		},
		{
			name:      "punctuation runs",
			raw:       "Great week!!! Any questions?; Thanks",
			cleaned:   "Great week!!! Any questions?; Thanks",
			fragments: []string{"Great week", "Any questions", "Thanks"},
		},
		{
			name:      "full width punctuation",
			raw:       "孩子们复习了分数。部分同学忘带计算器！下周测验？",
			cleaned:   "孩子们复习了分数。部分同学忘带计算器！下周测验？",
			fragments: []string{"孩子们复习了分数", "部分同学忘带计算器", "下周测验"},
		},
		{
			name:      "only punctuation",
			raw:       "...",
			cleaned:   "...",
			fragments: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, fragments, err := compose.Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if cleaned != tt.cleaned {
				t.Errorf("cleaned: got %q, want %q", cleaned, tt.cleaned)
			}
			if diff := cmp.Diff(tt.fragments, fragments); diff != "" {
				t.Errorf("fragments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\r\n\t", "\u3000"} {
		if _, _, err := compose.Normalize(raw); !errors.Is(err, compose.ErrEmptyNotes) {
			t.Errorf("Normalize(%q): got %v, want ErrEmptyNotes", raw, err)
		}
	}
}

func TestFragmentCap(t *testing.T) {
	raw := "One. Two. Three. Four. Five. Six. Seven."
	got := compose.Fragments(raw)
	want := []string{"One", "Two", "Three", "Four", "Five"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
}
