package uule

import (
	"encoding/base64"
	"strings"
)

// Wrap base64-URL encodes payload without padding and prepends prefix.
func Wrap(prefix string, payload []byte) string {
	return prefix + base64.RawURLEncoding.EncodeToString(payload)
}

// Unwrap checks that token starts with prefix and returns the decoded payload.
// A padded body must be correctly padded; line breaks are rejected.
// format names the codec in returned errors.
func Unwrap(format, prefix, token string) ([]byte, error) {
	body, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return nil, &Error{Format: format, Kind: InvalidPrefix, Input: token}
	}
	// encoding/base64 skips \r and \n while decoding.
	if i := strings.IndexAny(body, "\r\n"); i >= 0 {
		return nil, &Error{Format: format, Kind: Base64Decoding, Err: base64.CorruptInputError(i)}
	}

	enc := base64.RawURLEncoding
	if strings.HasSuffix(body, "=") {
		enc = base64.URLEncoding
	}
	payload, err := enc.DecodeString(body)
	if err != nil {
		return nil, &Error{Format: format, Kind: Base64Decoding, Err: err}
	}
	return payload, nil
}

// DetectVersion returns 1 or 2 for a token carrying the matching prefix, 0 otherwise.
func DetectVersion(token string) int {
	switch {
	case strings.HasPrefix(token, V1Prefix):
		return 1
	case strings.HasPrefix(token, V2Prefix):
		return 2
	}
	return 0
}
