package compose

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const ellipsis = "..."

var terminalPunct = regexp.MustCompile(`[.。!！?？]+$`)

// Shorten truncates s to at most limit characters, ending with "..." when cut.
func Shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	keep := max(limit-len(ellipsis), 0)
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:keep]), unicode.IsSpace) + ellipsis
}

// Sentence capitalizes the first letter of s and replaces any trailing
// terminal punctuation with a single period. Blank input yields "".
func Sentence(s string) string {
	s = terminalPunct.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "."
}
