package catalog

// Language identifies one of the two narrative languages.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Section identifies a selectable section of a narrative.
type Section string

const (
	Learning   Section = "learning"
	Activities Section = "activities"
	Homework   Section = "homework"
	Reminders  Section = "reminders"
	NextWeek   Section = "next_week"
)

// Sections lists the selectable sections in render order.
var Sections = []Section{Learning, Activities, Homework, Reminders, NextWeek}

// PerSection holds one integer per section. Tones use it for line counts and
// locales for selector offsets.
type PerSection struct {
	Learning   int `yaml:"learning" json:"learning"`
	Activities int `yaml:"activities" json:"activities"`
	Homework   int `yaml:"homework" json:"homework"`
	Reminders  int `yaml:"reminders" json:"reminders"`
	NextWeek   int `yaml:"next_week" json:"next_week"`
}

// Get returns the value for s, or zero for an unknown section.
func (p PerSection) Get(s Section) int {
	switch s {
	case Learning:
		return p.Learning
	case Activities:
		return p.Activities
	case Homework:
		return p.Homework
	case Reminders:
		return p.Reminders
	case NextWeek:
		return p.NextWeek
	}
	return 0
}

// Headings are the section titles rendered for a locale.
type Headings struct {
	Greeting   string `yaml:"greeting"`
	Learning   string `yaml:"learning"`
	Activities string `yaml:"activities"`
	Homework   string `yaml:"homework"`
	Reminders  string `yaml:"reminders"`
	NextWeek   string `yaml:"next_week"`
	Closing    string `yaml:"closing"`
}

// Of returns the heading for a selectable section.
func (h Headings) Of(s Section) string {
	switch s {
	case Learning:
		return h.Learning
	case Activities:
		return h.Activities
	case Homework:
		return h.Homework
	case Reminders:
		return h.Reminders
	case NextWeek:
		return h.NextWeek
	}
	return ""
}

// Injection rewrites a note fragment into a line placed at the front of a
// section pool. Symmetric injections apply only when symmetric fragment
// injection is enabled.
type Injection struct {
	Fragment  int     `yaml:"fragment"`
	Section   Section `yaml:"section"`
	Format    string  `yaml:"format"`
	Symmetric bool    `yaml:"symmetric"`
}

// Locale carries the rendering rules for one language.
type Locale struct {
	Code          Language    `yaml:"code"`
	Headings      Headings    `yaml:"headings"`
	NoHomework    string      `yaml:"no_homework"`
	NotesTrailer  string      `yaml:"notes_trailer"`
	FragmentLimit int         `yaml:"fragment_limit"`
	Sentence      bool        `yaml:"sentence"`
	Offsets       PerSection  `yaml:"offsets"`
	Injections    []Injection `yaml:"injections"`
}

// Tone is a named style controlling section lengths, greeting, and closing.
type Tone struct {
	Name     string              `yaml:"name"`
	Caption  string              `yaml:"caption"`
	Counts   PerSection          `yaml:"counts"`
	Greeting map[Language]string `yaml:"greeting"`
	Closing  map[Language]string `yaml:"closing"`
}

// Pool is the ordered candidate sentences of one template in one language.
type Pool map[Section][]string

// Template is a document category and its sentence pools per language.
type Template struct {
	Name  string            `yaml:"name"`
	Pools map[Language]Pool `yaml:"pools"`
}
