// Package gstin validates Indian GST Identification Numbers (GSTIN), the
// 15-character tax-registration code: a 2-digit state code, the holder's
// 10-character PAN, an entity code, the fixed literal 'Z', and a weighted
// mod-36 check character.
//
// # Usage
//
//	import "github.com/dmitrymomot/idkit/pkg/gstin"
//
//	g, err := gstin.Parse("29abcde1234f1zw")
//	if err != nil {
//		// err is one of the gstin.Err* sentinels
//	}
//	g.StateCode() // "29"
//	g.PAN()       // "ABCDE1234F"
//
//	gstin.StateName("29") // "Karnataka", true
//
// The embedded PAN is checked by delegating to the pan package rather than
// re-deriving its grammar, so the two validators can never drift apart.
// Extraction helpers (ExtractPAN, ExtractStateCode) demand full validity
// including the checksum, not just a plausible shape.
package gstin
