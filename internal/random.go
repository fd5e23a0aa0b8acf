package internal

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// MinTokenBytes is the smallest accepted raw token entropy: 128 bits.
const MinTokenBytes = 16

// NewSessionToken returns a fresh opaque session token with length bytes of
// entropy from crypto/rand, encoded as unpadded base64url.
func NewSessionToken(length int) (string, error) {
	if length < MinTokenBytes {
		return "", errors.New("token length below 16 bytes")
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	// base64url, no padding, compact
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
