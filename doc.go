// Package idkit validates, normalizes, and decomposes Indian identity
// document numbers: PAN, Aadhaar, GSTIN, IFSC, and UPI virtual payment
// addresses.
//
// Each format lives in its own package under pkg/ with a uniform surface:
// Normalize, Parse (returning a typed value or a sentinel error with a
// stable message), IsValid, plus format-specific accessors, mask/format
// helpers, and static name lookups. The shared check algorithms (Verhoeff
// and weighted mod-36) live in pkg/checksum, and core/validator and
// core/sanitizer provide struct tag-based validation and normalization on
// top of them.
//
// This root package ties the five formats together behind a DocumentType
// enumeration for callers that handle identifiers generically:
//
//	import "github.com/dmitrymomot/idkit"
//
//	idkit.Validate(idkit.TypePAN, "abcde1234f") // nil
//	idkit.Detect("29ABCDE1234F1ZW")             // [TypeGSTIN]
//
// All operations are pure functions over immutable inputs and are safe for
// unbounded concurrent use.
package idkit
