package compose

import (
	"fmt"
	"strings"
)

const keyFocusLimit = 50

// Captions builds the three-line summary: template, tone tag, key focus. The
// key focus is the first fragment, or the cleaned notes when there is none.
func Captions(template, toneTag, cleaned string, fragments []string) string {
	focus := cleaned
	if len(fragments) > 0 && fragments[0] != "" {
		focus = fragments[0]
	}

	return strings.Join([]string{
		fmt.Sprintf("1) %s: weekly highlights are ready for families.", template),
		fmt.Sprintf("2) Tone: %s.", toneTag),
		fmt.Sprintf("3) Key focus this week: %s.", Shorten(focus, keyFocusLimit)),
	}, "\n")
}
