package aadhaar

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/idkit/core/sanitizer"
	"github.com/dmitrymomot/idkit/pkg/checksum"
)

// Validation errors that can be checked with errors.Is(). The message texts
// are a stable contract; callers match on them across API boundaries.
var (
	ErrEmptyInput        = errors.New("Aadhaar cannot be empty")
	ErrInvalidLength     = errors.New("Aadhaar must be 12 digits long")
	ErrNotDigits         = errors.New("Aadhaar must contain only digits")
	ErrInvalidFirstDigit = errors.New("Aadhaar cannot start with 0 or 1")
	ErrChecksumFailed    = errors.New("Aadhaar checksum validation failed")
)

// maskPrefix replaces the first eight digits in the masked display form.
const maskPrefix = "XXXX XXXX "

// Aadhaar is a validated, normalized 12-digit Aadhaar number. The zero value
// is not valid; construct one through Parse.
type Aadhaar string

// Normalize strips whitespace and hyphen separators from the input. It does
// not validate.
func Normalize(raw string) string {
	return sanitizer.NormalizeCode(raw)
}

// Parse normalizes and validates an Aadhaar number. Checks run in order:
// empty input, length, charset, leading digit, Verhoeff check digit; the
// first failure wins.
func Parse(raw string) (Aadhaar, error) {
	s := Normalize(raw)

	if s == "" {
		return "", ErrEmptyInput
	}
	if len(s) != 12 {
		return "", ErrInvalidLength
	}
	if !isDigits(s) {
		return "", ErrNotDigits
	}
	if s[0] == '0' || s[0] == '1' {
		return "", ErrInvalidFirstDigit
	}
	// Repeated 3s, 6s, and 9s satisfy the raw Verhoeff check, so the
	// repeated-digit pattern is rejected here instead of being left to the
	// checksum.
	if isRepeated(s) || !checksum.ValidateVerhoeff(s) {
		return "", ErrChecksumFailed
	}

	return Aadhaar(s), nil
}

// IsValid reports whether the input is a valid Aadhaar number. A number made
// of a single repeated digit is rejected outright; the Verhoeff check would
// reject it anyway, but the pattern is a common test-data giveaway worth
// refusing before any arithmetic.
func IsValid(raw string) bool {
	s := Normalize(raw)
	if len(s) == 12 && isRepeated(s) {
		return false
	}

	_, err := Parse(s)
	return err == nil
}

// Mask validates the input and returns the masked display form: a fixed
// prefix followed by the last four digits.
func Mask(raw string) (string, error) {
	a, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return a.Mask(), nil
}

// Format validates the input and returns the digits grouped 4-4-4.
func Format(raw string) (string, error) {
	a, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return a.Format(), nil
}

// String returns the normalized 12-digit number.
func (a Aadhaar) String() string {
	return string(a)
}

// Mask returns the display form with only the last four digits visible,
// e.g. "XXXX XXXX 2346".
func (a Aadhaar) Mask() string {
	return maskPrefix + string(a)[8:]
}

// Format returns the digits grouped 4-4-4 with single spaces,
// e.g. "2341 2341 2346".
func (a Aadhaar) Format() string {
	s := string(a)
	return s[:4] + " " + s[4:8] + " " + s[8:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isRepeated(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}
