package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenEntropyBytes is the amount of randomness behind each bearer token.
const tokenEntropyBytes = 32

// GenerateToken generates an opaque URL-safe bearer token with 32 bytes of
// entropy. Tokens are looked up in the database, never decoded.
func GenerateToken() (string, error) {
	bytes := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
