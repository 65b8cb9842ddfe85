package vpa

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/idkit/core/sanitizer"
)

// Validation errors that can be checked with errors.Is(). The message texts
// are a stable contract; callers match on them across API boundaries.
var (
	ErrEmptyInput           = errors.New("UPI ID cannot be empty")
	ErrMissingAtSymbol      = errors.New("UPI ID must contain @ symbol")
	ErrMultipleAtSymbols    = errors.New("UPI ID cannot contain multiple @ symbols")
	ErrEmptyUsername        = errors.New("Username cannot be empty")
	ErrUsernameTooLong      = errors.New("Username cannot be longer than 50 characters")
	ErrUsernameInvalidChars = errors.New("Username contains invalid characters")
	ErrUsernameEdgeSpecial  = errors.New("Username cannot start or end with special characters")
	ErrUsernameConsecutive  = errors.New("Username cannot have consecutive special characters")
	ErrEmptyProvider        = errors.New("Provider cannot be empty")
	ErrProviderTooLong      = errors.New("Provider cannot be longer than 30 characters")
	ErrProviderInvalidChars = errors.New("Provider must contain only letters")
)

const (
	maxUsernameLen = 50
	maxProviderLen = 30
)

// VPA is a validated virtual payment address with its original case
// preserved. The zero value is not valid; construct one through Parse.
type VPA string

// Normalize removes whitespace from the input. Case and hyphens are
// significant in a VPA, so nothing else is touched. It does not validate.
func Normalize(raw string) string {
	return sanitizer.StripWhitespace(raw)
}

// Parse normalizes and validates a virtual payment address. Checks run in
// order: empty input, presence of exactly one '@', then the username rules
// (length, charset, edges, consecutive specials), then the provider rules;
// the first failure wins.
func Parse(raw string) (VPA, error) {
	s := Normalize(raw)

	if s == "" {
		return "", ErrEmptyInput
	}

	switch strings.Count(s, "@") {
	case 0:
		return "", ErrMissingAtSymbol
	case 1:
	default:
		return "", ErrMultipleAtSymbols
	}

	at := strings.IndexByte(s, '@')
	username, provider := s[:at], s[at+1:]

	if username == "" {
		return "", ErrEmptyUsername
	}
	if len(username) > maxUsernameLen {
		return "", ErrUsernameTooLong
	}
	for i := 0; i < len(username); i++ {
		if !isUsernameChar(username[i]) {
			return "", ErrUsernameInvalidChars
		}
	}
	if isSpecial(username[0]) || isSpecial(username[len(username)-1]) {
		return "", ErrUsernameEdgeSpecial
	}
	for i := 1; i < len(username); i++ {
		if isSpecial(username[i]) && isSpecial(username[i-1]) {
			return "", ErrUsernameConsecutive
		}
	}

	if provider == "" {
		return "", ErrEmptyProvider
	}
	if len(provider) > maxProviderLen {
		return "", ErrProviderTooLong
	}
	for i := 0; i < len(provider); i++ {
		if !isLetter(provider[i]) {
			return "", ErrProviderInvalidChars
		}
	}

	return VPA(s), nil
}

// IsValid reports whether the input is a valid virtual payment address.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// String returns the normalized address with original case preserved.
func (v VPA) String() string {
	return string(v)
}

// Username returns the part before the '@', case preserved.
func (v VPA) Username() string {
	s := string(v)
	return s[:strings.IndexByte(s, '@')]
}

// Provider returns the part after the '@', case preserved.
func (v VPA) Provider() string {
	s := string(v)
	return s[strings.IndexByte(s, '@')+1:]
}

func isUsernameChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || isSpecial(c)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpecial(c byte) bool {
	return c == '.' || c == '-' || c == '_'
}
