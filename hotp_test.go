package otpkit_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/otpkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4226 Appendix D reference key.
var rfc4226Key = []byte("12345678901234567890")

func TestGenerateHOTP(t *testing.T) {
	t.Parallel()

	// RFC 4226 Appendix D test values.
	expected := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, want := range expected {
		counter, want := counter, want
		t.Run(fmt.Sprintf("Counter %d", counter), func(t *testing.T) {
			t.Parallel()
			code, err := otpkit.GenerateHOTP(rfc4226Key, uint64(counter), 6, "SHA1")
			require.NoError(t, err)
			assert.Equal(t, want, code)
		})
	}
}

func TestGenerateHOTPAlgorithms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		algorithm string
		wantErr   error
	}{
		{name: "SHA1", algorithm: "SHA1"},
		{name: "SHA256", algorithm: "SHA256"},
		{name: "SHA512", algorithm: "SHA512"},
		{name: "Lowercase name", algorithm: "sha256"},
		{name: "Empty defaults to SHA1", algorithm: ""},
		{name: "Unknown algorithm", algorithm: "MD5", wantErr: otpkit.ErrUnsupportedAlgorithm},
		{name: "Garbage name", algorithm: "not-a-hash", wantErr: otpkit.ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, err := otpkit.GenerateHOTP(rfc4226Key, 1, 6, tt.algorithm)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Regexp(t, `^\d{6}$`, code)
		})
	}

	t.Run("Empty name matches SHA1", func(t *testing.T) {
		t.Parallel()
		defaulted, err := otpkit.GenerateHOTP(rfc4226Key, 1, 6, "")
		require.NoError(t, err)
		assert.Equal(t, "287082", defaulted)
	})
}

func TestGenerateHOTPDigits(t *testing.T) {
	t.Parallel()

	t.Run("Output length always matches digits", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []int{6, 8} {
			for counter := uint64(0); counter < 64; counter++ {
				code, err := otpkit.GenerateHOTP(rfc4226Key, counter, digits, "SHA1")
				require.NoError(t, err)
				assert.Len(t, code, digits)
				assert.Regexp(t, fmt.Sprintf(`^\d{%d}$`, digits), code)
			}
		}
	})

	t.Run("Leading zeros preserved", func(t *testing.T) {
		t.Parallel()
		// RFC 6238 Appendix B, time 1111111109: counter 0x023523EC yields
		// the 8-digit code 07081804.
		code, err := otpkit.GenerateHOTP(rfc4226Key, 0x023523EC, 8, "SHA1")
		require.NoError(t, err)
		assert.Equal(t, "07081804", code)
	})

	t.Run("Non-positive digits rejected", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []int{0, -1} {
			_, err := otpkit.GenerateHOTP(rfc4226Key, 0, digits, "SHA1")
			require.Error(t, err)
			assert.ErrorIs(t, err, otpkit.ErrInvalidLength)
		}
	})
}
