package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/weekly/internal/catalog"
	"github.com/JaimeStill/weekly/internal/compose"
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/internal/updates"
)

type rootOptions struct {
	fragments string
	symmetric bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "weekly",
		Short:         "Compose bilingual weekly updates for families",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.fragments, "fragments", "", "fragment injection mode: pinned or rotated (default from config)")
	cmd.PersistentFlags().BoolVar(&opts.symmetric, "symmetric", false, "inject the reminders fragment into the Chinese narrative too")

	cmd.AddCommand(
		newComposeCmd(opts),
		newBatchCmd(opts),
		newCatalogCmd(),
		newOpenAPICmd(),
	)

	return cmd
}

// loadConfig reads the service configuration and applies the persistent
// composer flags on top of it.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("fragments") {
		if _, err := compose.ParseMode(o.fragments); err != nil {
			return nil, err
		}
		cfg.Composer.FragmentMode = o.fragments
	}
	if cmd.Flags().Changed("symmetric") {
		cfg.Composer.SymmetricFragments = o.symmetric
	}

	return cfg, nil
}

// system builds an updates.System that logs to stderr and records nothing.
func (o *rootOptions) system(cmd *cobra.Command) (updates.System, *config.Config, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := cfg.Logging.NewLogger(cmd.ErrOrStderr()).With("module", "cli")
	sys := updates.New(catalog.Default(), cfg.Composer.Options(), nil, logger)
	return sys, cfg, nil
}
