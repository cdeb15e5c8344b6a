package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

var ErrGenerationFailed = errors.New("token generation failed")

const tokenBytes = 32

// NewConfirmationToken returns an opaque, non-guessable, URL-safe token
// used for single-use vendor email confirmation links.
func NewConfirmationToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrGenerationFailed
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
