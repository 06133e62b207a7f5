package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the maximum visual width (in monospace columns) of the
// provided string. East Asian wide and fullwidth runes occupy two columns,
// everything else printable (Latin, Cyrillic) one.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		w := lineWidth(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// PadRight appends ASCII spaces until the rendered width matches target.
func PadRight(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

func lineWidth(s string) int {
	n := 0
	for _, r := range stripANSI(s) {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) || !unicode.IsPrint(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}
