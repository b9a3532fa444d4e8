// Package testutil provides helpers for testing rendered UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines returns the visible lines of rendered output without styling.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing the given substring, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
