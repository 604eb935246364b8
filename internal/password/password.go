// Package password hashes and verifies patient passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost = 10

	// MaxLength is the number of password bytes bcrypt reads. Longer
	// passwords are cut to it on both hashing and verification.
	MaxLength = 72
)

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(clip(password), Cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is not an error;
// only a hash that bcrypt cannot read is.
func Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), clip(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("password: verify: %w", err)
	}
}

func clip(password string) []byte {
	b := []byte(password)
	if len(b) > MaxLength {
		b = b[:MaxLength]
	}
	return b
}
