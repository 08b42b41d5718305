// Package otpkit implements RFC 6238 Time-based One-Time Password (TOTP)
// generation on top of its RFC 4226 HOTP foundation, together with the
// supporting pieces an application needs around it: secret and backup-code
// generation, provisioning URL construction, QR rendering, and AES-256-GCM
// helpers for persisting secrets encrypted.
//
// The package keeps the whole cryptographic pipeline in-process and free of
// third-party OTP libraries: base32 secret decoding, HMAC hashing of the
// 8-byte big-endian counter, RFC 4226 dynamic truncation, and fixed-width
// decimal formatting.
//
// # Architecture
//
// The code is divided into small cohesive files.
//
//   • base32.go  – the shared base32 alphabet plus DecodeBase32,
//     DecodeBase32ToHex and EncodeBase32. Decoding is case-insensitive and
//     rejects characters outside the alphabet with ErrInvalidSecretCharacter.
//
//   • hotp.go    – GenerateHOTP: HMAC over the counter with a selectable
//     algorithm (SHA1, SHA256, SHA512), dynamic truncation to a 31-bit value,
//     and zero-padded decimal formatting.
//
//   • totp.go    – GenerateTOTP derives the counter from the current
//     30-second window; GenerateTOTPAt takes an explicit time and is the
//     deterministic form used in tests.
//
//   • secret.go / backup.go – RandomSecret and GenerateSecretKey draw
//     uniformly from the alphabet with crypto/rand; GenerateBackupCodes
//     produces base32-encoded recovery codes, with HashBackupCode and
//     VerifyBackupCode for safe storage and constant-time checking.
//
//   • uri.go / qrcode.go – BuildTOTPURL assembles the otpauth:// Key Uri
//     Format string with a stable query-key order; TOTPQRCode renders it as
//     a PNG for onboarding to Google Authenticator, 1Password and compatible
//     apps.
//
//   • aes256.go  – symmetric encryption of the secret key with AES-256-GCM
//     and key generation utilities. The encryption key is loaded once per
//     process via the env tag aware loader in config.go; the required
//     environment variable is TOTP_ENCRYPTION_KEY and it must contain a
//     base64-encoded 32-byte key.
//
// # Usage
//
// The minimal happy path for enrolling a user looks like this:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/dmitrymomot/otpkit"
//	)
//
//	func main() {
//	    // 1. Create a brand-new secret
//	    secret, _ := otpkit.GenerateSecretKey()
//
//	    // 2. Display the bootstrap URL/QR code to the user
//	    uri, _ := otpkit.BuildTOTPURL(otpkit.TOTPURLParams{
//	        Secret:      secret,
//	        AccountName: "alice@example.com",
//	        Issuer:      "Acme",
//	    })
//	    fmt.Println(uri)
//
//	    // 3. Generate the current code
//	    code, _ := otpkit.GenerateTOTP(secret, "SHA1")
//	    fmt.Println(code)
//	}
//
// This package generates codes; it deliberately ships no verification
// workflow. Checking a submitted code against a window of adjacent counters,
// persisting secrets, and rate limiting are caller responsibilities.
//
// # Error Handling
//
// Every exported operation returns a descriptive error that may be wrapped
// using errors.Join. Inspect errors with errors.Is against package level
// sentinels such as ErrInvalidSecretCharacter, ErrUnsupportedAlgorithm and
// ErrInvalidLength.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otpkit
