// Package sanitizer provides input normalization for Indian identity
// document codes. Identifiers arrive from forms and OCR pipelines with
// spaces, hyphens, and mixed case; this package reduces them to the
// canonical comparable form each validator expects.
//
// # String Normalization
//
// Normalize identifier strings before validation:
//
//	import "github.com/dmitrymomot/idkit/core/sanitizer"
//
//	// Remove separators and fold case for code-style identifiers
//	code := sanitizer.NormalizeCode(" abcde-1234-f ")
//	// Result: "ABCDE1234F"
//
//	// Remove whitespace only; case and hyphens stay significant
//	addr := sanitizer.StripWhitespace(" rahul.k-85 @okaxis ")
//	// Result: "rahul.k-85@okaxis"
//
// All normalizers are idempotent: applying one twice gives the same result
// as applying it once.
//
// # Struct Sanitization
//
// Normalize struct fields in place based on their tags:
//
//	type KYCForm struct {
//		PAN     string `sanitize:"pan"`
//		Aadhaar string `sanitize:"aadhaar"`
//		UPIID   string `sanitize:"vpa"`
//	}
//
//	form := KYCForm{PAN: " abcde 1234 f "}
//	if err := sanitizer.SanitizeStruct(&form); err != nil {
//		// Handle error
//	}
//	// form.PAN == "ABCDE1234F"
//
// Custom sanitizers can be added with RegisterSanitizer.
package sanitizer
