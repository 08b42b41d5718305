package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrymomot/otpkit"
)

const usage = `Usage: otpkit <command> [flags]

Commands:
  secret   Generate a new random base32 secret
  code     Generate the current TOTP code for a secret
  hex      Decode a base32 secret to hex
  uri      Build an otpauth:// provisioning URL
  qr       Write a provisioning QR code PNG to a file
  backup   Generate a batch of backup codes
  keygen   Generate a base64 AES-256 key for TOTP_ENCRYPTION_KEY
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "secret":
		fs := flag.NewFlagSet("secret", flag.ExitOnError)
		length := fs.Int("length", 32, "secret length in base32 characters")
		fs.Parse(os.Args[2:])
		secret, err := otpkit.RandomSecret(*length)
		if err != nil {
			log.Fatalf("Failed to generate secret: %v", err)
		}
		fmt.Println(secret)

	case "code":
		fs := flag.NewFlagSet("code", flag.ExitOnError)
		secret := fs.String("secret", "", "base32 secret (required)")
		algorithm := fs.String("algorithm", otpkit.DefaultAlgorithm, "HMAC algorithm: SHA1, SHA256 or SHA512")
		fs.Parse(os.Args[2:])
		code, err := otpkit.GenerateTOTP(*secret, *algorithm)
		if err != nil {
			log.Fatalf("Failed to generate code: %v", err)
		}
		fmt.Println(code)

	case "hex":
		fs := flag.NewFlagSet("hex", flag.ExitOnError)
		secret := fs.String("secret", "", "base32 secret (required)")
		fs.Parse(os.Args[2:])
		hexStr, err := otpkit.DecodeBase32ToHex(*secret)
		if err != nil {
			log.Fatalf("Failed to decode secret: %v", err)
		}
		fmt.Println(hexStr)

	case "uri":
		p, fs := urlParamsFlags("uri")
		fs.Parse(os.Args[2:])
		uri, err := otpkit.BuildTOTPURL(*p)
		if err != nil {
			log.Fatalf("Failed to build provisioning URL: %v", err)
		}
		fmt.Println(uri)

	case "qr":
		p, fs := urlParamsFlags("qr")
		out := fs.String("out", "otpkit-qr.png", "output PNG file")
		size := fs.Int("size", 256, "image size in pixels")
		fs.Parse(os.Args[2:])
		png, err := otpkit.TOTPQRCode(*p, *size)
		if err != nil {
			log.Fatalf("Failed to generate QR code: %v", err)
		}
		if err := os.WriteFile(*out, png, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		fmt.Printf("Wrote %s\n", *out)

	case "backup":
		fs := flag.NewFlagSet("backup", flag.ExitOnError)
		count := fs.Int("count", 8, "number of backup codes")
		length := fs.Int("bytes", 10, "random bytes per code before base32 encoding")
		fs.Parse(os.Args[2:])
		codes, err := otpkit.GenerateBackupCodes(*count, *length)
		if err != nil {
			log.Fatalf("Failed to generate backup codes: %v", err)
		}
		for _, code := range codes {
			fmt.Println(code)
		}

	case "keygen":
		encodedKey, err := otpkit.GenerateEncodedEncryptionKey()
		if err != nil {
			log.Fatalf("Failed to generate encoded encryption key: %v", err)
		}
		fmt.Printf("Generated Encoded Encryption Key (for TOTP_ENCRYPTION_KEY env var): \n———\n%s\n———\n", encodedKey)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func urlParamsFlags(name string) (*otpkit.TOTPURLParams, *flag.FlagSet) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	p := &otpkit.TOTPURLParams{}
	fs.StringVar(&p.Secret, "secret", "", "base32 secret (required)")
	fs.StringVar(&p.AccountName, "account", "", "account name, e.g. an email (required)")
	fs.StringVar(&p.Issuer, "issuer", "", "issuer shown in authenticator apps (required)")
	fs.StringVar(&p.Algorithm, "algorithm", "", "HMAC algorithm (default SHA1)")
	fs.IntVar(&p.Digits, "digits", 0, "code length (default 6)")
	fs.IntVar(&p.Period, "period", 0, "code validity period in seconds (default 30)")
	fs.Uint64Var(&p.Counter, "counter", 0, "initial counter value")
	fs.Int64Var(&p.InitialTime, "initial-time", 0, "unix time the counter sequence starts from")
	fs.IntVar(&p.Window, "window", 0, "verifier window in adjacent counters")
	return p, fs
}
