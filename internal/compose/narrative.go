package compose

import (
	"strings"

	"github.com/JaimeStill/weekly/internal/catalog"
)

// Block is one titled section of a narrative.
type Block struct {
	Section  catalog.Section
	Heading  string
	Lines    []string
	Bulleted bool
}

// Narrative is a complete single-language update before rendering.
type Narrative struct {
	Language        catalog.Language
	GreetingHeading string
	Greeting        string
	Blocks          []Block
	ClosingHeading  string
	Closing         string
	Trailer         string
}

// Text renders the plain-text form: titled sections separated by blank
// lines, with the trailer directly after the closing line.
func (n *Narrative) Text() string {
	lines := []string{n.GreetingHeading, n.Greeting, ""}
	for _, b := range n.Blocks {
		lines = append(lines, b.Heading)
		for _, l := range b.Lines {
			if b.Bulleted {
				l = "- " + l
			}
			lines = append(lines, l)
		}
		lines = append(lines, "")
	}
	lines = append(lines, n.ClosingHeading, n.Closing)
	if n.Trailer != "" {
		lines = append(lines, n.Trailer)
	}
	return strings.Join(lines, "\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "#", `\#`,
	"&", `\&`,
)

// Markdown renders the narrative as CommonMark with level-two headings.
func (n *Narrative) Markdown() string {
	var sb strings.Builder

	section := func(heading string, paragraphs ...string) {
		sb.WriteString("## " + markdownEscaper.Replace(heading) + "\n\n")
		for _, p := range paragraphs {
			sb.WriteString(markdownEscaper.Replace(p) + "\n\n")
		}
	}

	section(n.GreetingHeading, n.Greeting)
	for _, b := range n.Blocks {
		if !b.Bulleted {
			section(b.Heading, b.Lines...)
			continue
		}
		sb.WriteString("## " + markdownEscaper.Replace(b.Heading) + "\n\n")
		for _, l := range b.Lines {
			sb.WriteString("- " + markdownEscaper.Replace(l) + "\n")
		}
		sb.WriteString("\n")
	}

	closing := []string{n.Closing}
	if n.Trailer != "" {
		closing = append(closing, n.Trailer)
	}
	section(n.ClosingHeading, closing...)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
