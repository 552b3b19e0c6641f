// Package sanitizer normalizes free-text input before it is stored.
package sanitizer

import "strings"

// SanitizeName trims surrounding whitespace and collapses internal runs of
// whitespace to a single space. Customer names pass through here before a
// booking is created.
func SanitizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
