package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/weekly/internal/updates"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compose every request in a YAML file",
		Long: `Reads a YAML file holding either a list of requests or a mapping with a
"requests" list. Each request has template, tone, and notes keys. Results are
written as a JSON array in input order; invalid requests carry an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := readBatch(args[0])
			if err != nil {
				return err
			}

			sys, cfg, err := root.system(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = cfg.API.BatchConcurrency
			}

			results, err := updates.ComposeBatch(cmd.Context(), sys, reqs, concurrency)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum compositions in flight (default from config)")

	return cmd
}

func readBatch(path string) ([]updates.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var list []updates.Request
	if err := yaml.Unmarshal(data, &list); err == nil {
		return nonEmpty(list)
	}

	var batch updates.BatchRequest
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	return nonEmpty(batch.Requests)
}

func nonEmpty(reqs []updates.Request) ([]updates.Request, error) {
	if len(reqs) == 0 {
		return nil, updates.ErrEmptyBatch
	}
	return reqs, nil
}
