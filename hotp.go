package otpkit

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math"
	"strings"
)

// hashConstructors maps the HMAC algorithm names accepted by this package to
// their hash constructors. All of them produce digests of at least 20 bytes,
// which dynamic truncation relies on (offset+4 never exceeds the digest).
var hashConstructors = map[string]func() hash.Hash{
	"SHA1":   sha1.New,
	"SHA256": sha256.New,
	"SHA512": sha512.New,
}

// hashConstructor resolves an algorithm name case-insensitively, applying the
// SHA1 default for an empty name.
func hashConstructor(algorithm string) (func() hash.Hash, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	newHash, ok := hashConstructors[strings.ToUpper(algorithm)]
	if !ok {
		return nil, errors.Join(ErrUnsupportedAlgorithm, fmt.Errorf("algorithm %q", algorithm))
	}
	return newHash, nil
}

// hmacDigest computes HMAC(algorithm, key, counter) over the counter
// serialized as 8 bytes big-endian (RFC 4226 requirement).
func hmacDigest(key []byte, counter uint64, newHash func() hash.Hash) []byte {
	msg := make([]byte, 8)
	binary.BigEndian.PutUint64(msg, counter)
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// truncate applies RFC 4226 dynamic truncation: the low nibble of the final
// digest byte selects a 4-byte window, read big-endian with the sign bit
// cleared to yield a 31-bit value.
func truncate(digest []byte) uint32 {
	offset := digest[len(digest)-1] & 0x0f
	return binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff
}

// formatCode reduces a truncated value modulo 10^digits and left-pads with
// zeros to exactly digits characters.
func formatCode(value uint32, digits int) string {
	code := uint64(value) % uint64(math.Pow10(digits))
	return fmt.Sprintf("%0*d", digits, code)
}

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password
// algorithm for an explicit counter value. The returned code is a decimal
// string of exactly digits characters with leading zeros preserved.
func GenerateHOTP(key []byte, counter uint64, digits int, algorithm string) (string, error) {
	if digits < 1 {
		return "", errors.Join(ErrInvalidLength, fmt.Errorf("digits %d", digits))
	}
	newHash, err := hashConstructor(algorithm)
	if err != nil {
		return "", err
	}
	return formatCode(truncate(hmacDigest(key, counter, newHash)), digits), nil
}
