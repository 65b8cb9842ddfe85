package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idkit/core/sanitizer"
)

func TestSanitizeStruct_IdentifierFields(t *testing.T) {
	type KYCForm struct {
		PAN     string `sanitize:"pan"`
		Aadhaar string `sanitize:"aadhaar"`
		GSTIN   string `sanitize:"gstin"`
		IFSC    string `sanitize:"ifsc"`
		UPIID   string `sanitize:"vpa"`
		Note    string
		Skipped string `sanitize:"-"`
	}

	form := KYCForm{
		PAN:     " abcde-1234-f ",
		Aadhaar: "2341 2341 2346",
		GSTIN:   "29abcde1234f1zw",
		IFSC:    "sbin 0001234",
		UPIID:   " Rahul.K-85 @okaxis ",
		Note:    " untouched ",
		Skipped: " untouched ",
	}

	require.NoError(t, sanitizer.SanitizeStruct(&form))

	assert.Equal(t, "ABCDE1234F", form.PAN)
	assert.Equal(t, "234123412346", form.Aadhaar)
	assert.Equal(t, "29ABCDE1234F1ZW", form.GSTIN)
	assert.Equal(t, "SBIN0001234", form.IFSC)
	assert.Equal(t, "Rahul.K-85@okaxis", form.UPIID, "vpa keeps case and hyphens")
	assert.Equal(t, " untouched ", form.Note)
	assert.Equal(t, " untouched ", form.Skipped)
}

func TestSanitizeStruct_NestedAndPointerFields(t *testing.T) {
	type Bank struct {
		IFSC string `sanitize:"ifsc"`
	}
	type Form struct {
		Bank    Bank
		BankPtr *Bank
		PAN     *string `sanitize:"pan"`
	}

	pan := " abcde-1234-f "
	form := Form{
		Bank:    Bank{IFSC: "sbin 0001234"},
		BankPtr: &Bank{IFSC: "hdfc-0000240"},
		PAN:     &pan,
	}

	require.NoError(t, sanitizer.SanitizeStruct(&form))

	assert.Equal(t, "SBIN0001234", form.Bank.IFSC)
	assert.Equal(t, "HDFC0000240", form.BankPtr.IFSC)
	assert.Equal(t, "ABCDE1234F", *form.PAN)
}

func TestSanitizeStruct_SliceFields(t *testing.T) {
	type Form struct {
		Codes []string `sanitize:"code"`
	}

	form := Form{Codes: []string{" sbin-0001234 ", "hdfc 0000240"}}
	require.NoError(t, sanitizer.SanitizeStruct(&form))

	assert.Equal(t, []string{"SBIN0001234", "HDFC0000240"}, form.Codes)
}

func TestSanitizeStruct_ChainedSanitizers(t *testing.T) {
	type Form struct {
		Code string `sanitize:"trim,upper"`
	}

	form := Form{Code: " abc "}
	require.NoError(t, sanitizer.SanitizeStruct(&form))
	assert.Equal(t, "ABC", form.Code)
}

func TestSanitizeStruct_InvalidInput(t *testing.T) {
	t.Run("non-pointer", func(t *testing.T) {
		err := sanitizer.SanitizeStruct(struct{}{})
		require.Error(t, err)
	})

	t.Run("pointer to non-struct", func(t *testing.T) {
		s := "hello"
		err := sanitizer.SanitizeStruct(&s)
		require.Error(t, err)
	})
}

func TestRegisterSanitizer(t *testing.T) {
	sanitizer.RegisterSanitizer("reverse_test", func(s string) string {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	})

	type Form struct {
		Value string `sanitize:"reverse_test"`
	}

	form := Form{Value: "abc"}
	require.NoError(t, sanitizer.SanitizeStruct(&form))
	assert.Equal(t, "cba", form.Value)
}

func TestSanitizeStruct_UnknownSanitizerIgnored(t *testing.T) {
	type Form struct {
		Value string `sanitize:"does_not_exist,upper"`
	}

	form := Form{Value: strings.Repeat("ab", 2)}
	require.NoError(t, sanitizer.SanitizeStruct(&form))
	assert.Equal(t, "ABAB", form.Value)
}
