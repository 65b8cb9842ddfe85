// Package validator provides struct tag-based validation with the Indian
// identity-document rules built in, so KYC request payloads can be checked
// declaratively.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/idkit/core/validator"
//
//	type KYCRequest struct {
//		Name    string `validate:"required;min:2;max:100"`
//		PAN     string `validate:"required;pan"`
//		Aadhaar string `validate:"required;aadhaar"`
//		IFSC    string `validate:"ifsc"`
//		UPIID   string `validate:"vpa"`
//	}
//
//	req := KYCRequest{...}
//	if err := validator.ValidateStruct(&req); err != nil {
//		for _, fieldErr := range err.(validator.ValidationErrors) {
//			fmt.Printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
//		}
//	}
//
// Rules are separated by semicolon; parameters follow a colon. A field tagged
// "-" is skipped. Empty identifier fields pass the document rules unless
// "required" is also present, so optional documents stay optional.
//
// The identifier rules (pan, aadhaar, gstin, ifsc, vpa) report the same
// message texts as the corresponding package's Parse function, so validation
// errors look identical whichever path produced them.
//
// Custom rules can be added with RegisterValidator.
package validator
