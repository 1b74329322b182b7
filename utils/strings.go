package utils

// Truncate bounds s to max characters. Used to keep diagnostic error
// summaries short.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
