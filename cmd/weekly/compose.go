package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/weekly/internal/compose"
	"github.com/JaimeStill/weekly/internal/updates"
)

var views = []string{"bilingual", "english", "chinese", "captions", "html", "markdown", "json"}

type composeOptions struct {
	template string
	tone     string
	notes    string
	file     string
	view     string
}

func newComposeCmd(root *rootOptions) *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose one weekly update",
		Example: `  weekly compose --template "Exam and assessment update" --tone "Short and efficient" \
    --notes "Students reviewed fractions. Some forgot calculators."
  weekly compose --template "Preschool weekly update" --tone "Warm and friendly" --file notes.txt --view html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.template, "template", "", "template category name")
	cmd.Flags().StringVar(&opts.tone, "tone", "", "tone profile name")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "teacher notes")
	cmd.Flags().StringVar(&opts.file, "file", "", "read teacher notes from a file, or - for stdin")
	cmd.Flags().StringVar(&opts.view, "view", "bilingual", "output view: "+strings.Join(views, ", "))
	cmd.MarkFlagsMutuallyExclusive("notes", "file")

	return cmd
}

func runCompose(cmd *cobra.Command, root *rootOptions, opts *composeOptions) error {
	if !slices.Contains(views, opts.view) {
		return fmt.Errorf("unknown view %q", opts.view)
	}

	notes, err := opts.readNotes(cmd.InOrStdin())
	if err != nil {
		return err
	}

	sys, _, err := root.system(cmd)
	if err != nil {
		return err
	}

	doc, err := sys.Compose(cmd.Context(), updates.Request{
		Template: opts.template,
		Tone:     opts.tone,
		Notes:    notes,
	})
	if err != nil {
		return err
	}

	return writeView(cmd.OutOrStdout(), doc, opts.view)
}

func (o *composeOptions) readNotes(stdin io.Reader) (string, error) {
	switch o.file {
	case "":
		return o.notes, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read notes from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", fmt.Errorf("read notes: %w", err)
		}
		return string(data), nil
	}
}

func writeView(w io.Writer, doc *compose.Document, view string) error {
	var out string
	switch view {
	case "english":
		out = doc.English
	case "chinese":
		out = doc.Chinese
	case "captions":
		out = doc.Captions
	case "markdown":
		out = doc.Markdown()
	case "html":
		html, err := doc.HTML()
		if err != nil {
			return err
		}
		out = html
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		out = doc.Bilingual
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
