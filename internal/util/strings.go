// Package util provides shared text helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated cell text.
const Ellipsis = "…"

// Truncate shortens s to at most width visual columns, ending truncated text
// with Ellipsis. ANSI escape codes and wide characters are handled, so
// styled text can be passed in.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// PadRight appends spaces until s is width visual columns wide. Wider strings
// are returned unchanged.
func PadRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Fit truncates and pads s so it occupies exactly width visual columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return PadRight(Truncate(s, width), width)
}

// SingleLine collapses line breaks and tabs to spaces so a value renders on
// one grid line.
func SingleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
