package otpkit

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// RandomSecret generates a new base32 secret of the requested character
// length, drawn uniformly from Alphabet using the platform CSPRNG. An odd
// length is incremented by one first, so the result always has even length.
func RandomSecret(length int) (string, error) {
	if length < 1 {
		return "", errors.Join(ErrInvalidLength, fmt.Errorf("secret length %d", length))
	}
	if length%2 != 0 {
		length++
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}

	// 256 is a whole multiple of 32, so the byte modulo is unbiased.
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}

// GenerateSecretKey generates a 32-character base32 secret, the conventional
// 160-bit key size recommended by RFC 4226.
func GenerateSecretKey() (string, error) {
	return RandomSecret(32)
}
