package textfmt

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Width is the column limit for generated clue files.
const Width = 78

// Wrap word-wraps each paragraph of s to width columns. Lines that start with
// whitespace, a dash or a quote are treated as preformatted and left alone.
func Wrap(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if isPreformatted(line) {
			continue
		}
		lines[i] = wordwrap.String(line, width)
	}
	return strings.Join(lines, "\n")
}

func isPreformatted(line string) bool {
	if line == "" {
		return true
	}
	switch line[0] {
	case ' ', '\t', '-', '\'', '"':
		return true
	}
	return false
}

// Title capitalises every word, for display names such as "council chamber".
func Title(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(s)
}

// Breadcrumb renders a location path for display, e.g. "Park › Pond › Dock".
func Breadcrumb(segments []string) string {
	titled := make([]string, len(segments))
	for i, seg := range segments {
		titled[i] = Title(seg)
	}
	return strings.Join(titled, " › ")
}
