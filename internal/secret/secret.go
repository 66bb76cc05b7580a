// Package secret generates, hashes and verifies the edit secrets of goals and
// issues capability tokens derived from them.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a presented secret does not match the stored hash.
var ErrMismatch = errors.New("secret does not match")

// secretBytes is the amount of random data in an edit secret. 32 bytes are
// below bcrypt's 72 byte input limit after base64 encoding.
const secretBytes = 32

// Generate returns a new random edit secret, URL-safe so that it can be used
// as a path segment.
func Generate() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes for secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the salted bcrypt hash of the secret.
func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash secret: %w", err)
	}

	return string(hash), nil
}

// Verify compares the secret against the hash. bcrypt compares the derived
// keys in constant time.
func Verify(hash, secret string) error {
	if hash == "" || secret == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		return ErrMismatch
	}

	return nil
}
