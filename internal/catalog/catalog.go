// Package catalog holds the immutable content catalog: locales, tone
// profiles, and per-template sentence pools. The default catalog is parsed
// once from embedded YAML and never mutated.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Default returns the catalog compiled into the binary. It panics if the
// embedded data is invalid, which the package tests rule out.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Parse(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
})

// Catalog is read-only after Parse returns. All accessors return copies.
type Catalog struct {
	locales   []Locale
	tones     []Tone
	templates []Template
}

type document struct {
	Locales   []Locale   `yaml:"locales"`
	Tones     []Tone     `yaml:"tones"`
	Templates []Template `yaml:"templates"`
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		locales:   doc.Locales,
		tones:     doc.Tones,
		templates: doc.Templates,
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return c, nil
}

// Templates returns template names in catalog order.
func (c *Catalog) Templates() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name
	}
	return names
}

// Tones returns tone names in catalog order.
func (c *Catalog) Tones() []string {
	names := make([]string, len(c.tones))
	for i, t := range c.tones {
		names[i] = t.Name
	}
	return names
}

// Template looks up a template by exact name.
func (c *Catalog) Template(name string) (Template, error) {
	i := slices.IndexFunc(c.templates, func(t Template) bool { return t.Name == name })
	if i < 0 {
		return Template{}, ErrUnknownTemplate
	}
	return c.templates[i].clone(), nil
}

// Tone looks up a tone by exact name.
func (c *Catalog) Tone(name string) (Tone, error) {
	i := slices.IndexFunc(c.tones, func(t Tone) bool { return t.Name == name })
	if i < 0 {
		return Tone{}, ErrUnknownTone
	}
	return c.tones[i].clone(), nil
}

// Locale returns the rendering rules for lang.
func (c *Catalog) Locale(lang Language) (Locale, bool) {
	i := slices.IndexFunc(c.locales, func(l Locale) bool { return l.Code == lang })
	if i < 0 {
		return Locale{}, false
	}
	l := c.locales[i]
	l.Injections = slices.Clone(l.Injections)
	return l, true
}

// Lines returns a copy of the pool for section s in lang.
func (t Template) Lines(lang Language, s Section) []string {
	return slices.Clone(t.Pools[lang][s])
}

func (t Template) clone() Template {
	pools := make(map[Language]Pool, len(t.Pools))
	for lang, pool := range t.Pools {
		cp := make(Pool, len(pool))
		for s, lines := range pool {
			cp[s] = slices.Clone(lines)
		}
		pools[lang] = cp
	}
	return Template{Name: t.Name, Pools: pools}
}

func (t Tone) clone() Tone {
	out := t
	out.Greeting = make(map[Language]string, len(t.Greeting))
	out.Closing = make(map[Language]string, len(t.Closing))
	for k, v := range t.Greeting {
		out.Greeting[k] = v
	}
	for k, v := range t.Closing {
		out.Closing[k] = v
	}
	return out
}
