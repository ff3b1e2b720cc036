package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/weekly/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List template categories and tone profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Templates:")
			for _, name := range c.Templates() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "Tones:")
			for _, name := range c.Tones() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}
