package qr

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newToken returns a 256-bit random token, hex-encoded. The token is the only
// credential a member presents at verification, so it must be unguessable and
// must not be derived from the request fields.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate qr token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
