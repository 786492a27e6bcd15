package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateCancellationToken returns a 64-char hex token (32 random
// bytes). Presenting it is the only authorization for cancelling the
// reservation it belongs to.
func GenerateCancellationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate cancellation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
