package compose_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/weekly/internal/compose"
)

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		template, tone, cleaned string
		want                    compose.Seed
	}{
		{"Exam and assessment update", "Short and efficient", "Students reviewed fractions. Some forgot calculators.", 455250},
		{"Preschool weekly update", "Warm and friendly", "Hi", 759833},
	}

	for _, tt := range tests {
		if got := compose.DeriveSeed(tt.template, tt.tone, tt.cleaned); got != tt.want {
			t.Errorf("DeriveSeed(%q, %q, %q) = %d, want %d", tt.template, tt.tone, tt.cleaned, got, tt.want)
		}
	}
}

func TestDeriveSeedBounded(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("z", 10000),
		strings.Repeat("复习", 5000),
		"emoji 🎒 and \u0000 nul",
	}

	for _, in := range inputs {
		seed := compose.DeriveSeed("t", "t", in)
		if seed < 0 || seed >= compose.SeedModulus {
			t.Errorf("seed %d out of range for %q", seed, in)
		}
		if again := compose.DeriveSeed("t", "t", in); again != seed {
			t.Errorf("seed not deterministic: %d vs %d", seed, again)
		}
	}
}

func TestDeriveSeedSeparator(t *testing.T) {
	a := compose.DeriveSeed("ab", "c", "d")
	b := compose.DeriveSeed("a", "bc", "d")
	if a == b {
		t.Errorf("separator should distinguish field boundaries, both %d", a)
	}
}
