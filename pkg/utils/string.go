// Package utils provides small text helpers shared by the report and
// command output.
package utils

import "strings"

// NormalizeWhitespace collapses runs of whitespace (including newlines in
// review text) into single spaces and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, appending an ellipsis when it
// cuts. Rune-based so multi-byte text is never split mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}
