// Package vpa validates UPI Virtual Payment Addresses, the
// "username@provider" identifiers used for UPI payments.
//
// # Usage
//
//	import "github.com/dmitrymomot/idkit/pkg/vpa"
//
//	addr, err := vpa.Parse("rahul.k-85@okaxis")
//	if err != nil {
//		// err is one of the vpa.Err* sentinels
//	}
//	addr.Username() // "rahul.k-85"
//	addr.Provider() // "okaxis"
//
//	vpa.ProviderName("okaxis") // "Google Pay (Axis Bank)", true
//
// Unlike the document-code formats, a VPA is case-sensitive: normalization
// removes whitespace only, and hyphens inside the username are significant.
// The username is limited to 50 characters of letters, digits, '.', '-' and
// '_'; it may not start or end with a special character or contain two
// consecutive ones. The provider is letters only, up to 30 characters.
package vpa
