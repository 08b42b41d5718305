package otpkit

import "errors"

var (
	ErrInvalidSecretCharacter        = errors.New("secret contains a character outside the base32 alphabet")
	ErrUnsupportedAlgorithm          = errors.New("unsupported HMAC algorithm")
	ErrInvalidLength                 = errors.New("length must be greater than 0")
	ErrMissingSecret                 = errors.New("missing secret")
	ErrInvalidSecret                 = errors.New("invalid secret")
	ErrMissingAccountName            = errors.New("missing account name")
	ErrMissingIssuer                 = errors.New("missing issuer")
	ErrFailedToGenerateSecret        = errors.New("failed to generate random secret")
	ErrFailedToGenerateBackupCode    = errors.New("failed to generate backup code")
	ErrFailedToGenerateQRCode        = errors.New("failed to generate QR code")
	ErrFailedToEncryptSecret         = errors.New("failed to encrypt secret")
	ErrFailedToDecryptSecret         = errors.New("failed to decrypt secret")
	ErrInvalidCipherTooShort         = errors.New("cipher text too short")
	ErrFailedToGenerateEncryptionKey = errors.New("failed to generate encryption key")
	ErrFailedToLoadEncryptionKey     = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeyLength    = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet           = errors.New("encryption key not set")
)
