// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated text.
const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8, and turns
// non-breaking spaces into plain spaces. Persisted filter values are not
// whitelisted, so anything read back from storage goes through here.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case r == '\u00a0':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// needsSanitize returns true if the string contains anything Sanitize changes.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r == '\u00a0' || r == utf8.RuneError || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut.
// Wide characters (Hangul, CJK) count as two cells.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Fit truncates s if necessary, then pads it to exactly width cells.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row aligns left and right on one line of exactly width cells. The left
// side is truncated when both do not fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	leftMax := max(width-rightWidth-1, 0)
	if lipgloss.Width(left) > leftMax {
		left = Truncate(left, leftMax)
	}
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
