package vpa_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idkit/pkg/vpa"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple address", "rahul@paytm", "rahul@paytm", nil},
		{"dots and digits", "rahul.k85@okaxis", "rahul.k85@okaxis", nil},
		{"hyphen and underscore", "rahul-k_85@ybl", "rahul-k_85@ybl", nil},
		{"case preserved", "Rahul.K@OkAxis", "Rahul.K@OkAxis", nil},
		{"whitespace stripped", " rahul @ paytm ", "rahul@paytm", nil},
		{"empty input", "", "", vpa.ErrEmptyInput},
		{"whitespace only", "   ", "", vpa.ErrEmptyInput},
		{"no at symbol", "rahulpaytm", "", vpa.ErrMissingAtSymbol},
		{"two at symbols", "rahul@@paytm", "", vpa.ErrMultipleAtSymbols},
		{"at in username", "ra@hul@paytm", "", vpa.ErrMultipleAtSymbols},
		{"empty username", "@paytm", "", vpa.ErrEmptyUsername},
		{"username too long", strings.Repeat("a", 51) + "@paytm", "", vpa.ErrUsernameTooLong},
		{"username bad charset", "rahul+k@paytm", "", vpa.ErrUsernameInvalidChars},
		{"username starts with dot", ".user@paytm", "", vpa.ErrUsernameEdgeSpecial},
		{"username ends with hyphen", "user-@paytm", "", vpa.ErrUsernameEdgeSpecial},
		{"consecutive specials", "ra..hul@paytm", "", vpa.ErrUsernameConsecutive},
		{"mixed consecutive specials", "ra.-hul@paytm", "", vpa.ErrUsernameConsecutive},
		{"empty provider", "rahul@", "", vpa.ErrEmptyProvider},
		{"provider too long", "rahul@" + strings.Repeat("a", 31), "", vpa.ErrProviderTooLong},
		{"digits in provider", "rahul@paytm1", "", vpa.ErrProviderInvalidChars},
		{"dot in provider", "rahul@ok.axis", "", vpa.ErrProviderInvalidChars},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := vpa.Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse_EdgeSpecialErrorText(t *testing.T) {
	t.Parallel()

	// The message text is a contract; downstream consumers match on it.
	_, err := vpa.Parse(".user@paytm")
	require.Error(t, err)
	assert.Equal(t, "Username cannot start or end with special characters", err.Error())
}

func TestParse_BoundaryLengths(t *testing.T) {
	t.Parallel()

	t.Run("username at 50 is accepted", func(t *testing.T) {
		t.Parallel()
		assert.True(t, vpa.IsValid(strings.Repeat("a", 50)+"@paytm"))
	})

	t.Run("provider at 30 is accepted", func(t *testing.T) {
		t.Parallel()
		assert.True(t, vpa.IsValid("rahul@"+strings.Repeat("a", 30)))
	})
}

func TestFieldAccessors(t *testing.T) {
	t.Parallel()

	addr, err := vpa.Parse("Rahul.K-85@OkAxis")
	require.NoError(t, err)

	assert.Equal(t, "Rahul.K-85", addr.Username(), "username keeps original case")
	assert.Equal(t, "OkAxis", addr.Provider(), "provider keeps original case")
}

func TestProviderName(t *testing.T) {
	t.Parallel()

	name, ok := vpa.ProviderName("okaxis")
	require.True(t, ok)
	assert.Equal(t, "Google Pay (Axis Bank)", name)

	name, ok = vpa.ProviderName("PAYTM")
	require.True(t, ok, "lookup must be case-insensitive")
	assert.Equal(t, "Paytm Payments Bank", name)

	_, ok = vpa.ProviderName("nosuchhandle")
	assert.False(t, ok)
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "rahul@paytm", " Rahul.K @ OkAxis ", "a b c@d"}
	for _, in := range inputs {
		once := vpa.Normalize(in)
		assert.Equal(t, once, vpa.Normalize(once), "Normalize must be idempotent for %q", in)
	}
}
