package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/liteend/internal/errors"
)

// DefaultTokenLength is the length of every generated secret unless configured otherwise.
const DefaultTokenLength = 64

// randomSource is replaced in tests to simulate an unavailable random source.
var randomSource io.Reader = rand.Reader

// GenerateToken returns exactly length lowercase hex characters drawn from crypto/rand.
// Odd lengths read one extra byte and drop the last character.
func GenerateToken(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("generating token of length %d: %w", length, kerrors.ErrInvalidTokenLength)
	}

	raw := make([]byte, (length+1)/2)
	if _, err := io.ReadFull(randomSource, raw); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return hex.EncodeToString(raw)[:length], nil
}

// MustGenerateToken is GenerateToken for callers that treat an unavailable random
// source as fatal.
func MustGenerateToken(length int) string {
	token, err := GenerateToken(length)
	if err != nil {
		panic(err)
	}
	return token
}

// mustGenerate adapts MustGenerateToken to TokenGenerator. It is the default
// generator of a Materializer.
func mustGenerate(length int) (string, error) {
	return MustGenerateToken(length), nil
}
