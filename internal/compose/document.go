package compose

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// Document holds the four rendered views of one composition.
type Document struct {
	English   string `json:"english"`
	Chinese   string `json:"chinese"`
	Bilingual string `json:"bilingual"`
	Captions  string `json:"captions"`

	english *Narrative
	chinese *Narrative
}

func newDocument(english, chinese *Narrative, captions string) *Document {
	en := english.Text()
	zh := chinese.Text()
	return &Document{
		English:   en,
		Chinese:   zh,
		Bilingual: en + "\n\n" + zh,
		Captions:  captions,
		english:   english,
		chinese:   chinese,
	}
}

// Narratives returns the structured English and Chinese narratives.
func (d *Document) Narratives() (english, chinese *Narrative) {
	return d.english, d.chinese
}

// Markdown renders both narratives stacked under a thematic break, followed
// by the captions as an ordered list.
func (d *Document) Markdown() string {
	var buf bytes.Buffer
	buf.WriteString(d.english.Markdown())
	buf.WriteString("\n---\n\n")
	buf.WriteString(d.chinese.Markdown())
	buf.WriteString("\n---\n\n")
	buf.WriteString(markdownEscaper.Replace(d.Captions))
	buf.WriteString("\n")
	return buf.String()
}

// HTML converts Markdown to an HTML fragment. Raw HTML in notes is not
// passed through.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(d.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
