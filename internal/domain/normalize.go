package domain

import "strings"

// Normalize prepares text for comparison: trims leading/trailing whitespace
// and converts to lowercase. Internal whitespace is kept as is.
//
// Stored dictionary keys are never rewritten; only copies are normalized.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
