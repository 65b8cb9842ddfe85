package gstin

import (
	"errors"

	"github.com/dmitrymomot/idkit/core/sanitizer"
	"github.com/dmitrymomot/idkit/pkg/checksum"
	"github.com/dmitrymomot/idkit/pkg/pan"
)

// Validation errors that can be checked with errors.Is(). The message texts
// are a stable contract; callers match on them across API boundaries.
var (
	ErrEmptyInput        = errors.New("GSTIN cannot be empty")
	ErrInvalidLength     = errors.New("GSTIN must be 15 characters long")
	ErrInvalidStateCode  = errors.New("Invalid state code in GSTIN")
	ErrInvalidPAN        = errors.New("Invalid PAN in GSTIN")
	ErrInvalidEntityCode = errors.New("Invalid entity code in GSTIN")
	ErrInvalidZChar      = errors.New("14th character of GSTIN must be Z")
	ErrChecksumFailed    = errors.New("GSTIN checksum validation failed")
)

// GSTIN is a validated, normalized GST identification number. The zero value
// is not valid; construct one through Parse.
type GSTIN string

// Normalize strips whitespace and hyphen separators and upper-cases the
// input. It does not validate.
func Normalize(raw string) string {
	return sanitizer.NormalizeCode(raw)
}

// Parse normalizes and validates a GSTIN. Checks run in order: empty input,
// length, state code, embedded PAN (delegated to pan.Parse), entity code,
// fixed 'Z' literal, mod-36 checksum; the first failure wins.
func Parse(raw string) (GSTIN, error) {
	s := Normalize(raw)

	if s == "" {
		return "", ErrEmptyInput
	}
	if len(s) != 15 {
		return "", ErrInvalidLength
	}
	if _, ok := stateNames[s[:2]]; !ok {
		return "", ErrInvalidStateCode
	}
	if !pan.IsValid(s[2:12]) {
		return "", ErrInvalidPAN
	}
	if !isEntityCode(s[12]) {
		return "", ErrInvalidEntityCode
	}
	if s[13] != 'Z' {
		return "", ErrInvalidZChar
	}
	if !checksum.ValidateMod36(s) {
		return "", ErrChecksumFailed
	}

	return GSTIN(s), nil
}

// IsValid reports whether the input is a valid GSTIN including its checksum.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// ExtractPAN validates the input in full and returns the embedded PAN.
func ExtractPAN(raw string) (string, error) {
	g, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return g.PAN(), nil
}

// ExtractStateCode validates the input in full and returns the 2-digit
// state code.
func ExtractStateCode(raw string) (string, error) {
	g, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return g.StateCode(), nil
}

// String returns the normalized 15-character GSTIN.
func (g GSTIN) String() string {
	return string(g)
}

// StateCode returns the 2-digit state code.
func (g GSTIN) StateCode() string {
	return string(g)[:2]
}

// PAN returns the embedded 10-character PAN.
func (g GSTIN) PAN() string {
	return string(g)[2:12]
}

// EntityCode returns the entity-code character, which distinguishes
// registrations of the same PAN within a state.
func (g GSTIN) EntityCode() string {
	return string(g)[12:13]
}

// isEntityCode reports whether c is in [1-9A-Z]. '0' is not a valid entity
// code.
func isEntityCode(c byte) bool {
	return (c >= '1' && c <= '9') || (c >= 'A' && c <= 'Z')
}
