package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r can be part of an identifier.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TrimNonWord strips leading and trailing runes that cannot be part of an identifier.
func TrimNonWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return !IsWordRune(r) })
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsValidPrefix checks if input should be processed for completions.
// A prefix is rejected when it is longer than maxLen runes (maxLen <= 0 disables
// the check) or contains whitespace or control characters.
func IsValidPrefix(s string, maxLen int) bool {
	if maxLen > 0 && RuneLen(s) > maxLen {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// FormatCount formats an integer with comma separators
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
