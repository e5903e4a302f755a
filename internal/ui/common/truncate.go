package common

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateToWidth shortens s to at most width display cells, appending
// an ellipsis when content is cut. ANSI escape sequences are stripped
// first so styling cannot skew the measurement.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	plain := ansi.Strip(s)
	if runewidth.StringWidth(plain) <= width {
		return plain
	}
	return runewidth.Truncate(plain, width, "…")
}

// PadToWidth right-pads s with spaces to exactly width display cells,
// truncating first if needed.
func PadToWidth(s string, width int) string {
	s = TruncateToWidth(s, width)
	return s + spaces(width-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
