package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// ResetTokenBytes is the amount of entropy in a password reset token.
// The hex encoding doubles it to 40 characters.
const ResetTokenBytes = 20

type randomTokenGenerator struct {
	size   int
	source io.Reader
}

// NewTokenGenerator constructs a [TokenGenerator] that reads size bytes
// from the OS CSPRNG and returns them hex-encoded.
func NewTokenGenerator(size int) TokenGenerator {
	if size <= 0 {
		size = ResetTokenBytes
	}
	return &randomTokenGenerator{size: size, source: rand.Reader}
}

// Generate implements [TokenGenerator].
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, g.size)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
