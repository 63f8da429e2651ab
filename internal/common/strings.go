package common

import "strings"

// UnknownStr is the String value of out-of-range enum values.
const UnknownStr = "unknown"

// BeforePipe returns the part of s before the first '|', trimmed.
// Sections carry "display | full key" texts.
func BeforePipe(s string) string {
	if i := strings.IndexByte(s, '|'); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}
