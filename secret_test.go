package otpkit_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSecret(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		length  int
		wantLen int
		wantErr error
	}{
		{name: "Even length", length: 16, wantLen: 16},
		{name: "Odd length rounded up", length: 15, wantLen: 16},
		{name: "Length one rounded up", length: 1, wantLen: 2},
		{name: "Standard 32 characters", length: 32, wantLen: 32},
		{name: "Zero length", length: 0, wantErr: otpkit.ErrInvalidLength},
		{name: "Negative length", length: -5, wantErr: otpkit.ErrInvalidLength},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			secret, err := otpkit.RandomSecret(tt.length)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, secret)
				return
			}
			require.NoError(t, err)
			assert.Len(t, secret, tt.wantLen)
			assert.Zero(t, len(secret)%2)
			assert.Regexp(t, "^[A-Z2-7]+$", secret)
		})
	}
}

func TestRandomSecretUniqueness(t *testing.T) {
	t.Parallel()
	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		secret, err := otpkit.RandomSecret(32)
		require.NoError(t, err)
		_, dup := seen[secret]
		assert.False(t, dup, "secrets should not repeat")
		seen[secret] = struct{}{}
	}
}

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()
	secret, err := otpkit.GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, secret, 32)
	assert.Regexp(t, otpkit.ValidateSecretKeyRegex, secret)

	// The generated secret must feed straight into code generation.
	code, err := otpkit.GenerateTOTP(secret, "")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
}
