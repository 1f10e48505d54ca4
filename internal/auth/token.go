package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// GenerateToken returns a URL-safe random token of the given length drawn
// from a 64-symbol alphabet, so each character carries 6 bits.
func GenerateToken(length int) (string, error) {
	generate, err := nanoid.Standard(length)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return generate(), nil
}

// HashToken is how single-use tokens are kept at rest.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
