package checksum

import "errors"

// Validation errors that can be checked with errors.Is()
var (
	// ErrEmptyInput indicates an empty digit sequence was passed to a generator.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrNotDigits indicates the input contains characters other than 0-9.
	ErrNotDigits = errors.New("input must contain only digits")

	// ErrInvalidLength indicates the mod-36 input body is not 14 characters.
	ErrInvalidLength = errors.New("input must be 14 characters long")

	// ErrInvalidCharacter indicates a character outside the 0-9A-Z alphabet.
	ErrInvalidCharacter = errors.New("input must contain only characters 0-9 and A-Z")
)
