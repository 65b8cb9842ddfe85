package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idkit/pkg/checksum"
)

func TestCalculateMod36(t *testing.T) {
	t.Parallel()

	t.Run("known check characters", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			input string
			want  string
		}{
			{"29ABCDE1234F1Z", "W"},
			{"27AAPFU0939F1Z", "V"},
		}
		for _, tt := range tests {
			tt := tt
			got, err := checksum.CalculateMod36(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "check character for %q", tt.input)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		_, err := checksum.CalculateMod36("29ABCDE1234F1")
		require.ErrorIs(t, err, checksum.ErrInvalidLength)

		_, err = checksum.CalculateMod36("")
		require.ErrorIs(t, err, checksum.ErrInvalidLength)
	})

	t.Run("invalid characters", func(t *testing.T) {
		t.Parallel()
		_, err := checksum.CalculateMod36("29abcde1234f1z")
		require.ErrorIs(t, err, checksum.ErrInvalidCharacter, "lowercase is outside the alphabet")

		_, err = checksum.CalculateMod36("29ABCDE1234F1*")
		require.ErrorIs(t, err, checksum.ErrInvalidCharacter)
	})
}

func TestValidateMod36(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid code", "29ABCDE1234F1ZW", true},
		{"valid real-world shape", "27AAPFU0939F1ZV", true},
		{"wrong check character", "29ABCDE1234F1Z5", false},
		{"transposed body rejected", "92ABCDE1234F1ZW", false},
		{"empty input", "", false},
		{"too short", "29ABCDE1234F1Z", false},
		{"too long", "29ABCDE1234F1ZW0", false},
		{"lowercase rejected", "29abcde1234f1zw", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checksum.ValidateMod36(tt.input))
		})
	}
}

func TestMod36RoundTrip(t *testing.T) {
	t.Parallel()

	// Walk the alphabet through every position parity.
	alphabet := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	inputs := []string{
		"29ABCDE1234F1Z",
		"00000000000000",
		"ZZZZZZZZZZZZZZ",
		"0A1B2C3D4E5F6G",
	}
	for i := 0; i < len(alphabet); i++ {
		var body []byte
		for j := 0; j < 14; j++ {
			body = append(body, alphabet[(i+j*7)%36])
		}
		inputs = append(inputs, string(body))
	}

	for _, in := range inputs {
		check, err := checksum.CalculateMod36(in)
		require.NoError(t, err)
		assert.True(t, checksum.ValidateMod36(in+check), "round trip failed for %q", in)
	}
}

func FuzzMod36RoundTrip(f *testing.F) {
	f.Add("29ABCDE1234F1Z")
	f.Add("00000000000000")

	f.Fuzz(func(t *testing.T, body string) {
		check, err := checksum.CalculateMod36(body)
		if err != nil {
			// Wrong length or alphabet; nothing to round-trip.
			return
		}
		if !checksum.ValidateMod36(body + check) {
			t.Errorf("ValidateMod36(%q + %q) = false, want true", body, check)
		}
	})
}
