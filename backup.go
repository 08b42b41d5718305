package otpkit

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateBackupCodes creates count single-use codes for account recovery.
// Each code is the base32 encoding of length cryptographically random bytes.
// The batch is all-or-nothing: on any failure no codes are returned.
// Uniqueness across the batch is not enforced; at reasonable lengths the
// collision probability is negligible.
func GenerateBackupCodes(count, length int) ([]string, error) {
	if count < 1 {
		return nil, errors.Join(ErrInvalidLength, fmt.Errorf("backup code count %d", count))
	}
	if length < 1 {
		return nil, errors.Join(ErrInvalidLength, fmt.Errorf("backup code byte length %d", length))
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, length)
		if _, err := rand.Read(raw); err != nil {
			return nil, errors.Join(ErrFailedToGenerateBackupCode, err)
		}
		codes[i] = EncodeBase32(raw)
	}
	return codes, nil
}

// HashBackupCode creates a SHA-256 hash for secure storage of backup codes.
func HashBackupCode(code string) string {
	hash := sha256.Sum256([]byte(code))
	return hex.EncodeToString(hash[:])
}

// VerifyBackupCode compares a submitted code against its stored hash in
// constant time, so comparison duration reveals nothing about where the
// values diverge.
func VerifyBackupCode(code, hashedCode string) bool {
	computedHash := HashBackupCode(code)
	return subtle.ConstantTimeCompare(
		[]byte(computedHash),
		[]byte(hashedCode),
	) == 1
}
