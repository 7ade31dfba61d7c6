package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Record tokens are 9 characters from the base-36 alphabet, the same shape
// the rest of the stack (exports, admin screens) already expects.
const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	length   = 9
)

// New creates a short base-36 record token.
//
// Returns an error if the system has insufficient entropy for secure random
// generation.
func New() (string, error) {
	token, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// MustNew is like New but panics if token generation fails. Use only where
// failure should crash the program.
func MustNew() string {
	token, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to generate token: %v", err))
	}
	return token
}
