package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var languages = []Language{English, Chinese}

func (c *Catalog) validate() error {
	var errs []error

	if len(c.locales) != len(languages) {
		errs = append(errs, fmt.Errorf("expected locales %v, got %d", languages, len(c.locales)))
	}
	for _, lang := range languages {
		l, ok := c.Locale(lang)
		if !ok {
			errs = append(errs, fmt.Errorf("missing locale %q", lang))
			continue
		}
		errs = append(errs, validateLocale(l)...)
	}

	if len(c.tones) == 0 {
		errs = append(errs, errors.New("no tones defined"))
	}
	if len(c.templates) == 0 {
		errs = append(errs, errors.New("no templates defined"))
	}

	seen := make(map[string]bool)
	for _, t := range c.tones {
		if t.Name == "" || seen["tone:"+t.Name] {
			errs = append(errs, fmt.Errorf("tone name %q is empty or duplicated", t.Name))
		}
		seen["tone:"+t.Name] = true
		errs = append(errs, validateTone(t)...)
	}
	for _, t := range c.templates {
		if t.Name == "" || seen["template:"+t.Name] {
			errs = append(errs, fmt.Errorf("template name %q is empty or duplicated", t.Name))
		}
		seen["template:"+t.Name] = true
		errs = append(errs, validateTemplate(t)...)
	}

	return errors.Join(errs...)
}

func validateLocale(l Locale) []error {
	var errs []error
	h := l.Headings
	for _, v := range []string{h.Greeting, h.Learning, h.Activities, h.Homework, h.Reminders, h.NextWeek, h.Closing} {
		if v == "" {
			errs = append(errs, fmt.Errorf("locale %q: empty heading", l.Code))
			break
		}
	}
	if l.NoHomework == "" {
		errs = append(errs, fmt.Errorf("locale %q: no_homework required", l.Code))
	}
	if l.NotesTrailer != "" && strings.Count(l.NotesTrailer, "%s") != 1 {
		errs = append(errs, fmt.Errorf("locale %q: notes_trailer needs exactly one %%s", l.Code))
	}
	if l.FragmentLimit < 4 {
		errs = append(errs, fmt.Errorf("locale %q: fragment_limit must be at least 4", l.Code))
	}
	for _, inj := range l.Injections {
		if inj.Fragment < 0 {
			errs = append(errs, fmt.Errorf("locale %q: negative fragment index", l.Code))
		}
		if !slices.Contains(Sections, inj.Section) {
			errs = append(errs, fmt.Errorf("locale %q: unknown injection section %q", l.Code, inj.Section))
		}
		if strings.Count(inj.Format, "%s") != 1 {
			errs = append(errs, fmt.Errorf("locale %q: injection format %q needs exactly one %%s", l.Code, inj.Format))
		}
	}
	return errs
}

func validateTone(t Tone) []error {
	var errs []error
	if t.Caption == "" {
		errs = append(errs, fmt.Errorf("tone %q: caption required", t.Name))
	}
	for _, s := range Sections {
		if t.Counts.Get(s) < 0 {
			errs = append(errs, fmt.Errorf("tone %q: negative %s count", t.Name, s))
		}
	}
	for _, lang := range languages {
		if t.Greeting[lang] == "" || t.Closing[lang] == "" {
			errs = append(errs, fmt.Errorf("tone %q: greeting and closing required for %q", t.Name, lang))
		}
	}
	return errs
}

func validateTemplate(t Template) []error {
	var errs []error
	for _, lang := range languages {
		pool := t.Pools[lang]
		for s := range pool {
			if !slices.Contains(Sections, s) {
				errs = append(errs, fmt.Errorf("template %q: unknown section %q in %q", t.Name, s, lang))
			}
		}
		for _, s := range []Section{Learning, Activities, Reminders} {
			if len(pool[s]) == 0 {
				errs = append(errs, fmt.Errorf("template %q: %s pool for %q is empty", t.Name, s, lang))
			}
		}
	}
	return errs
}
