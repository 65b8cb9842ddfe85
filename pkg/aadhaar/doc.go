// Package aadhaar validates Aadhaar numbers, the 12-digit Indian national
// identity number protected by a Verhoeff check digit.
//
// # Usage
//
//	import "github.com/dmitrymomot/idkit/pkg/aadhaar"
//
//	a, err := aadhaar.Parse("2341 2341 2346")
//	if err != nil {
//		// err is one of the aadhaar.Err* sentinels
//	}
//	a.Format() // "2341 2341 2346"
//	a.Mask()   // "XXXX XXXX 2346"
//
// Validation checks run in order: empty input, length, digit charset,
// leading digit (the first digit is never 0 or 1), then the Verhoeff check
// over all 12 digits. A number consisting of one repeated digit is never
// valid regardless of the checksum; both Parse and IsValid reject the
// pattern, and the two paths agree on every input.
package aadhaar
