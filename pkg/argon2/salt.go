package argon2

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSalt returns length cryptographically random bytes
func GenerateSalt(length uint32) ([]byte, error) {
	return createSalt(rand.Reader, length)
}

func createSalt(random io.Reader, length uint32) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(random, b); err != nil {
		return nil, fmt.Errorf("argon2: unable to generate salt: %w", err)
	}
	return b, nil
}
