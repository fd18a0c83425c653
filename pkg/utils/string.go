package utils

import "unicode/utf8"

// Truncate shortens s to at most maxRunes runes, appending "..." when
// anything was cut. Multi-byte characters are never split.
func Truncate(s string, maxRunes int) string {
	if maxRunes < 0 {
		maxRunes = 0
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	i := 0
	for pos := range s {
		if i == maxRunes {
			return s[:pos] + "..."
		}
		i++
	}
	return s
}
