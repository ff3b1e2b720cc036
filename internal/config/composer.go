package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/weekly/internal/compose"
)

const (
	EnvComposerFragmentMode       = "WEEKLY_COMPOSER_FRAGMENT_MODE"
	EnvComposerSymmetricFragments = "WEEKLY_COMPOSER_SYMMETRIC_FRAGMENTS"
)

// ComposerConfig selects how note fragments are injected.
type ComposerConfig struct {
	FragmentMode       string `toml:"fragment_mode"`
	SymmetricFragments bool   `toml:"symmetric_fragments"`
}

// Options converts the config into assembler options. Finalize guarantees
// FragmentMode parses.
func (c *ComposerConfig) Options() compose.Options {
	mode, _ := compose.ParseMode(c.FragmentMode)
	return compose.Options{Mode: mode, SymmetricFragments: c.SymmetricFragments}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ComposerConfig) Finalize() error {
	if c.FragmentMode == "" {
		c.FragmentMode = string(compose.Pinned)
	}
	if v := os.Getenv(EnvComposerFragmentMode); v != "" {
		c.FragmentMode = v
	}
	if v := os.Getenv(EnvComposerSymmetricFragments); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvComposerSymmetricFragments, err)
		}
		c.SymmetricFragments = b
	}

	if _, err := compose.ParseMode(c.FragmentMode); err != nil {
		return err
	}
	return nil
}

// Merge overwrites non-zero fields from overlay. An overlay can only switch
// symmetric fragments on.
func (c *ComposerConfig) Merge(overlay *ComposerConfig) {
	if overlay.FragmentMode != "" {
		c.FragmentMode = overlay.FragmentMode
	}
	if overlay.SymmetricFragments {
		c.SymmetricFragments = true
	}
}
