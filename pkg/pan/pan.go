package pan

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dmitrymomot/idkit/core/sanitizer"
)

// Validation errors that can be checked with errors.Is(). The message texts
// are a stable contract; callers match on them across API boundaries.
var (
	ErrEmptyInput    = errors.New("PAN cannot be empty")
	ErrInvalidLength = errors.New("PAN must be 10 characters long")
	ErrInvalidFormat = errors.New("Invalid PAN format")
)

var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// PAN is a validated, normalized Permanent Account Number. The zero value is
// not valid; construct one through Parse.
type PAN string

// Normalize strips whitespace and hyphen separators and upper-cases the
// input. It does not validate.
func Normalize(raw string) string {
	return sanitizer.NormalizeCode(raw)
}

// Parse normalizes and validates a PAN, returning the typed value on success.
// Checks run in order: empty input, length, grammar; the first failure wins.
func Parse(raw string) (PAN, error) {
	s := Normalize(raw)

	if s == "" {
		return "", ErrEmptyInput
	}
	if len(s) != 10 {
		return "", ErrInvalidLength
	}
	if !panRegex.MatchString(s) {
		return "", ErrInvalidFormat
	}

	return PAN(s), nil
}

// IsValid reports whether the input is a structurally valid PAN.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Mask validates the input and returns its masked display form.
func Mask(raw string) (string, error) {
	p, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return p.Mask(), nil
}

// String returns the normalized PAN.
func (p PAN) String() string {
	return string(p)
}

// Mask returns the display form with the middle six characters hidden,
// e.g. "ABC******F".
func (p PAN) Mask() string {
	s := string(p)
	return s[:3] + strings.Repeat("*", 6) + s[9:]
}

// HolderType returns the holder-category character (the 4th character).
func (p PAN) HolderType() string {
	return string(p)[3:4]
}

// holderTypes maps the 4th PAN character to the holder category it encodes.
var holderTypes = map[string]string{
	"A": "Association of Persons",
	"B": "Body of Individuals",
	"C": "Company",
	"F": "Firm",
	"G": "Government",
	"H": "Hindu Undivided Family",
	"J": "Artificial Juridical Person",
	"L": "Local Authority",
	"P": "Individual",
	"T": "Trust",
}

// HolderTypeName resolves a holder-category character to its name.
// The lookup is case-insensitive. The second return value is false for
// unknown codes.
func HolderTypeName(code string) (string, bool) {
	name, ok := holderTypes[strings.ToUpper(code)]
	return name, ok
}
