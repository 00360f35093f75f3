package text

// Truncate limits text to max characters (not bytes), counting runes so
// multi-byte input is never cut mid-character.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(text)

	if len(runes) <= max {
		return text
	}

	return string(runes[:max])
}
