package otpkit

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the RFC 4648 base32 alphabet shared by every operation in this
// package: secret decoding, secret generation and backup-code encoding.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

const hexDigits = "0123456789abcdef"

// DecodeBase32 decodes a base32 secret into raw key bytes. The input is
// case-insensitive and must contain only characters from Alphabet; anything
// else fails with ErrInvalidSecretCharacter. Trailing bits that do not fill a
// complete byte are dropped, so the decoded length is floor(len(s)*5/8).
func DecodeBase32(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*5/8)
	var buf uint32
	var bits uint
	for i := 0; i < len(s); i++ {
		idx, err := alphabetIndex(s[i])
		if err != nil {
			return nil, errors.Join(err, fmt.Errorf("character %q at position %d", s[i], i))
		}
		buf = buf<<5 | uint32(idx)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	return out, nil
}

// DecodeBase32ToHex decodes a base32 secret into a lowercase hexadecimal
// string, one digit per 4-bit group of the decoded bit stream. Trailing bits
// short of a full group are dropped, which means the result may have odd
// length when the input length is not a multiple of 4.
func DecodeBase32ToHex(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) * 5 / 4)
	var buf uint32
	var bits uint
	for i := 0; i < len(s); i++ {
		idx, err := alphabetIndex(s[i])
		if err != nil {
			return "", errors.Join(err, fmt.Errorf("character %q at position %d", s[i], i))
		}
		buf = buf<<5 | uint32(idx)
		bits += 5
		for bits >= 4 {
			bits -= 4
			sb.WriteByte(hexDigits[buf>>bits&0x0f])
		}
	}
	return sb.String(), nil
}

// EncodeBase32 encodes raw bytes as an uppercase base32 string without
// padding characters. A final partial 5-bit group is zero-filled on the
// right, matching RFC 4648 with padding stripped.
func EncodeBase32(b []byte) string {
	var sb strings.Builder
	sb.Grow((len(b)*8 + 4) / 5)
	var buf uint32
	var bits uint
	for _, c := range b {
		buf = buf<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(Alphabet[buf>>bits&0x1f])
		}
	}
	if bits > 0 {
		sb.WriteByte(Alphabet[buf<<(5-bits)&0x1f])
	}
	return sb.String()
}

// alphabetIndex maps a single character to its 5-bit alphabet index,
// accepting both upper and lower case.
func alphabetIndex(c byte) (int, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	idx := strings.IndexByte(Alphabet, c)
	if idx < 0 {
		return 0, ErrInvalidSecretCharacter
	}
	return idx, nil
}
