package ifsc

import (
	"errors"

	"github.com/dmitrymomot/idkit/core/sanitizer"
)

// Validation errors that can be checked with errors.Is(). The message texts
// are a stable contract; callers match on them across API boundaries.
var (
	ErrEmptyInput        = errors.New("IFSC cannot be empty")
	ErrInvalidLength     = errors.New("IFSC must be 11 characters long")
	ErrInvalidBankCode   = errors.New("First 4 characters of IFSC must be letters")
	ErrInvalidFifthChar  = errors.New("5th character of IFSC must be 0")
	ErrInvalidBranchCode = errors.New("Last 6 characters of IFSC must be alphanumeric")
)

// IFSC is a validated, normalized bank-branch code. The zero value is not
// valid; construct one through Parse.
type IFSC string

// Normalize strips whitespace and hyphen separators and upper-cases the
// input. It does not validate.
func Normalize(raw string) string {
	return sanitizer.NormalizeCode(raw)
}

// Parse normalizes and validates an IFSC. Checks run in order: empty input,
// length, bank code, reserved fifth character, branch code; the first
// failure wins.
func Parse(raw string) (IFSC, error) {
	s := Normalize(raw)

	if s == "" {
		return "", ErrEmptyInput
	}
	if len(s) != 11 {
		return "", ErrInvalidLength
	}
	for i := 0; i < 4; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", ErrInvalidBankCode
		}
	}
	if s[4] != '0' {
		return "", ErrInvalidFifthChar
	}
	for i := 5; i < 11; i++ {
		if !isAlphanumeric(s[i]) {
			return "", ErrInvalidBranchCode
		}
	}

	return IFSC(s), nil
}

// IsValid reports whether the input is a structurally valid IFSC.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// String returns the normalized 11-character code.
func (c IFSC) String() string {
	return string(c)
}

// BankCode returns the 4-letter bank code.
func (c IFSC) BankCode() string {
	return string(c)[:4]
}

// BranchCode returns the 6-character branch code.
func (c IFSC) BranchCode() string {
	return string(c)[5:]
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}
