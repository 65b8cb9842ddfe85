// Package pan validates Indian Permanent Account Numbers (PAN), the
// 10-character income-tax identifier shaped AAAAA9999A.
//
// # Usage
//
//	import "github.com/dmitrymomot/idkit/pkg/pan"
//
//	p, err := pan.Parse(" abcde-1234-f ")
//	if err != nil {
//		// err is one of the pan.Err* sentinels
//	}
//	p.String() // "ABCDE1234F"
//	p.Mask()   // "ABC******F"
//
// PAN has no check digit; validation is purely structural. Parse normalizes
// the input (separators stripped, upper-cased) before checking, and returns
// exactly one error for the first failing check: empty input, wrong length,
// then grammar mismatch.
//
// The fourth character encodes the holder category; HolderTypeName resolves
// it to a human-readable name.
package pan
