// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (except tab) and invalid UTF-8, and
// turns non-breaking spaces into plain ones. Station names and stream
// titles come from the network and may contain anything.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unwanted) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == utf8.RuneError, unwanted(r):
			return -1
		}
		return r
	}, s)
}

func unwanted(r rune) bool {
	return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
}

// TruncateEllipsis shortens s to maxWidth columns using a single "…".
// ANSI styling in s is preserved.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width columns. ANSI styling is not counted.
func Pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Row places left and right at both ends of a width-column line.
func Row(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Field renders "label value" on one line of at most width columns. The
// value is sanitized and truncated, the label never is.
func Field(label, value string, width int) string {
	room := width - runewidth.StringWidth(label) - 1
	if room <= 0 {
		return runewidth.Truncate(label, max(width, 0), "")
	}
	return label + " " + TruncateEllipsis(Sanitize(value), room)
}
