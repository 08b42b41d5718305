package otpkit

import (
	"encoding/base64"
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

// defaultQRSize is the image size in pixels used when no size is specified.
const defaultQRSize = 256

// TOTPQRCode builds the provisioning URL for the given parameters and
// renders it as a PNG QR code of size x size pixels, ready to be scanned by
// authenticator apps. A non-positive size falls back to 256.
func TOTPQRCode(p TOTPURLParams, size int) ([]byte, error) {
	uri, err := BuildTOTPURL(p)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := skipqrcode.Encode(uri, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// TOTPQRCodeBase64 renders the provisioning QR code as a data URI suitable
// for direct embedding in an <img> tag.
func TOTPQRCodeBase64(p TOTPURLParams, size int) (string, error) {
	png, err := TOTPQRCode(p, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
