// Package checksum implements the two check algorithms used by Indian
// identity documents: the Verhoeff check digit protecting Aadhaar numbers
// and the weighted mod-36 checksum protecting GSTINs.
//
// # Verhoeff Check Digit
//
// Verhoeff is a table-driven check-digit scheme over decimal digits that
// detects all single-digit errors and all adjacent transpositions:
//
//	import "github.com/dmitrymomot/idkit/pkg/checksum"
//
//	d, err := checksum.GenerateVerhoeff("23412341234")
//	// d == "6"
//
//	checksum.ValidateVerhoeff("234123412346") // true
//	checksum.ValidateVerhoeff("234123412345") // false
//
// # Mod-36 Checksum
//
// The mod-36 checksum runs over the alphabet 0-9A-Z (values 0-35). It is
// computed over a 14-character body and appended as a 15th character:
//
//	c, err := checksum.CalculateMod36("29ABCDE1234F1Z")
//	// c == "W"
//
//	checksum.ValidateMod36("29ABCDE1234F1ZW") // true
//
// Both validators return false rather than an error on malformed input, so
// they can sit directly inside boolean validation pipelines.
package checksum
