package otpkit

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ValidateSecretKeyRegex ensures base32 format: letters A-Z and digits 2-7.
var ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+$")

// TOTPURLParams contains the parameters for provisioning URL generation.
// Counter, InitialTime and Window are metadata carried for clients that
// support them; they do not influence code generation in this package.
type TOTPURLParams struct {
	Secret      string // Base32-encoded TOTP secret key (required)
	AccountName string // User identifier like email (required)
	Issuer      string // Service name displayed in authenticator apps (required)
	Algorithm   string // HMAC algorithm (optional, defaults to SHA1)
	Digits      int    // Number of digits in generated codes (optional, defaults to 6)
	Period      int    // Code validity period in seconds (optional, defaults to 30)
	Counter     uint64 // Initial HOTP counter value
	InitialTime int64  // Unix time the counter sequence starts from
	Window      int    // Number of adjacent counters a verifier may accept
}

// Validate ensures all required parameters are present and the secret has
// base32 shape.
func (p TOTPURLParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !ValidateSecretKeyRegex.MatchString(strings.ToUpper(p.Secret)) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GetDefaults returns a copy with RFC 6238 standard defaults applied to
// zero-valued fields.
func (p TOTPURLParams) GetDefaults() TOTPURLParams {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// BuildTOTPURL creates a properly encoded provisioning URL for use with
// authenticator apps, following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The query keys appear in a fixed order (secret, issuer, algorithm, digits,
// period, counter, initial_time, window) so the output is byte-for-byte
// stable across calls.
func BuildTOTPURL(p TOTPURLParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p = p.GetDefaults()

	var sb strings.Builder
	sb.WriteString("otpauth://totp/")
	sb.WriteString(url.PathEscape(p.Issuer))
	sb.WriteByte(':')
	sb.WriteString(url.PathEscape(p.AccountName))
	sb.WriteString("?secret=")
	sb.WriteString(url.QueryEscape(p.Secret))
	sb.WriteString("&issuer=")
	sb.WriteString(url.QueryEscape(p.Issuer))
	sb.WriteString("&algorithm=")
	sb.WriteString(url.QueryEscape(p.Algorithm))
	fmt.Fprintf(&sb, "&digits=%d&period=%d&counter=%d&initial_time=%d&window=%d",
		p.Digits, p.Period, p.Counter, p.InitialTime, p.Window)

	return sb.String(), nil
}
