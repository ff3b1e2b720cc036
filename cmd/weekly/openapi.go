package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/weekly/internal/api"
	"github.com/JaimeStill/weekly/internal/config"
	"github.com/JaimeStill/weekly/pkg/openapi"
)

func newOpenAPICmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Write the OpenAPI document for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			spec := api.BuildSpec(cfg, cfg.Database.Enabled())
			if output != "" {
				return openapi.WriteJSON(spec, output)
			}

			data, err := openapi.MarshalJSON(spec)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
