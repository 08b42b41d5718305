package otpkit

import (
	"strings"
	"time"
)

const (
	DefaultDigits    = 6      // Standard 6-digit TOTP codes
	DefaultPeriod    = 30     // 30-second validity window (RFC 6238 standard)
	DefaultAlgorithm = "SHA1" // HMAC-SHA1 algorithm (RFC 6238 standard)
)

// GenerateTOTP generates the time-based one-time password for the current
// 30-second window. The secret must be base32 text over Alphabet; algorithm
// is one of SHA1, SHA256 or SHA512 and defaults to SHA1 when empty. The code
// is always 6 digits in this path.
func GenerateTOTP(secret, algorithm string) (string, error) {
	return GenerateTOTPAt(secret, algorithm, time.Now())
}

// GenerateTOTPAt generates the code for the 30-second window containing the
// given time. It is a pure function of its inputs, which makes it the
// deterministic entry point for tests and for generating codes at specific
// moments.
func GenerateTOTPAt(secret, algorithm string, t time.Time) (string, error) {
	key, err := DecodeBase32(strings.TrimSpace(secret))
	if err != nil {
		return "", err
	}
	counter := uint64(t.Unix() / int64(DefaultPeriod))
	return GenerateHOTP(key, counter, DefaultDigits, algorithm)
}
