package textutil

// TruncateRunes returns at most max runes of s. Truncation counts runes, not
// bytes, so multibyte text is never cut mid-character.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
