package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/weekly/internal/updates"
)

const (
	examTemplate = "Exam and assessment update"
	shortTone    = "Short and efficient"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WEEKLY_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestComposeViews(t *testing.T) {
	base := []string{"compose", "--template", examTemplate, "--tone", shortTone,
		"--notes", "Students reviewed fractions.\nSome forgot calculators."}

	tests := []struct {
		view string
		want string
	}{
		{"english", "- Teacher-noted focus: Students reviewed fractions.\n"},
		{"chinese", "「Students reviewed fractions」"},
		{"captions", "3) Key focus this week: Students reviewed fractions.\n"},
		{"html", "<h2>Learning Highlights</h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			out, err := execute(t, "", append(base, "--view", tt.view)...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestComposeFromStdinMatchesFlag(t *testing.T) {
	notes := "Students reviewed fractions.\nSome forgot calculators."

	fromFlag, err := execute(t, "", "compose", "--template", examTemplate, "--tone", shortTone, "--notes", notes)
	if err != nil {
		t.Fatalf("flag: %v", err)
	}
	fromStdin, err := execute(t, notes, "compose", "--template", examTemplate, "--tone", shortTone, "--file", "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if fromFlag != fromStdin {
		t.Error("stdin notes produced a different document")
	}
}

func TestComposeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown template",
			args: []string{"compose", "--template", "Nope", "--tone", shortTone, "--notes", "x"},
			want: "please choose a valid template",
		},
		{
			name: "empty notes",
			args: []string{"compose", "--template", examTemplate, "--tone", shortTone, "--notes", " \n "},
			want: "notes cannot be empty",
		},
		{
			name: "unknown view",
			args: []string{"compose", "--template", examTemplate, "--tone", shortTone, "--notes", "x", "--view", "pdf"},
			want: "unknown view",
		},
		{
			name: "bad fragment mode",
			args: []string{"--fragments", "shuffled", "compose", "--template", examTemplate, "--tone", shortTone, "--notes", "x"},
			want: "invalid fragment mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "list",
			yaml: `
- template: Exam and assessment update
  tone: Short and efficient
  notes: Students reviewed fractions.
- template: Unknown
  tone: Short and efficient
  notes: x
`,
		},
		{
			name: "requests mapping",
			yaml: `
requests:
  - template: Exam and assessment update
    tone: Short and efficient
    notes: Students reviewed fractions.
  - template: Unknown
    tone: Short and efficient
    notes: x
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "batch.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			out, err := execute(t, "", "batch", path, "--concurrency", "2")
			if err != nil {
				t.Fatalf("execute: %v", err)
			}

			var results []updates.BatchResult
			if err := json.Unmarshal([]byte(out), &results); err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if len(results) != 2 {
				t.Fatalf("results: got %d", len(results))
			}
			if results[0].Document == nil || results[0].Error != "" {
				t.Errorf("first result: %+v", results[0])
			}
			if results[1].Error != "please choose a valid template" {
				t.Errorf("second result error: %q", results[1].Error)
			}
		})
	}
}

func TestBatchEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte("requests: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "", "batch", path); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "", "catalog")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"  Preschool weekly update\n", "  Short and efficient\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
}

func TestOpenAPIToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	if _, err := execute(t, "", "openapi", "-o", path); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var spec map[string]any
	if err := json.Unmarshal(data, &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", spec["openapi"])
	}
}
