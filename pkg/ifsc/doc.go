// Package ifsc validates Indian Financial System Codes (IFSC), the
// 11-character bank-branch identifier used for NEFT/RTGS/IMPS routing:
// a 4-letter bank code, the reserved literal '0', and a 6-character
// alphanumeric branch code.
//
// # Usage
//
//	import "github.com/dmitrymomot/idkit/pkg/ifsc"
//
//	code, err := ifsc.Parse("sbin0001234")
//	if err != nil {
//		// err is one of the ifsc.Err* sentinels
//	}
//	code.BankCode()   // "SBIN"
//	code.BranchCode() // "001234"
//
//	ifsc.BankName("SBIN") // "State Bank of India", true
//
// IFSC carries no checksum; validation is purely structural and runs in
// order: empty input, length, bank-code letters, the reserved fifth
// character, branch-code charset.
package ifsc
