package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeHex returns the lower case hex text of d.
func EncodeHex(d []byte) string {
	return hex.EncodeToString(d)
}

// DecodeHex decodes hex text in either case. Surrounding space is ignored.
func DecodeHex(s string) ([]byte, error) {
	res, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: hex: %w", ErrMalformed, err)
	}
	return res, nil
}

// EncodeBase64 returns the padded standard base64 text of d.
func EncodeBase64(d []byte) string {
	return base64.StdEncoding.EncodeToString(d)
}

// DecodeBase64 decodes standard base64 text, with or without padding.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	enc := base64.StdEncoding
	if len(s)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	res, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %w", ErrMalformed, err)
	}
	return res, nil
}
