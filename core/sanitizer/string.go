package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts the string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts the string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// StripWhitespace removes every whitespace character from the string.
// Case and all other characters, including hyphens, are preserved.
// This is the normalization used for payment addresses, where hyphens
// and letter case are significant inside the username.
func StripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripSeparators removes every whitespace character and hyphen from the
// string. Hyphens and spaces are the separators people insert when writing
// out document codes ("ABCDE-1234-F", "2341 2341 2346").
func StripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCode strips separators and upper-cases the result. This is the
// canonical form for case-insensitive document codes (PAN, Aadhaar, GSTIN,
// IFSC).
func NormalizeCode(s string) string {
	return strings.ToUpper(StripSeparators(s))
}

// KeepDigits removes every character that is not an ASCII digit.
func KeepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// KeepAlphanumeric removes every character that is not an ASCII letter or digit.
func KeepAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
