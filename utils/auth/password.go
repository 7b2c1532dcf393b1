package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

const (
	// DefaultCost is the bcrypt work factor for new hashes.
	DefaultCost = 12
	// MinPasswordLength is the floor enforced before hashing.
	MinPasswordLength = 8
)

// HashPassword returns a bcrypt hash of the password. Inputs under
// MinPasswordLength are rejected before any hashing happens.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a plaintext candidate.
// A wrong password surfaces as ErrPasswordMismatch; any other error means
// the stored hash itself is malformed.
func VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// IsPasswordValid reports whether the password meets the length floor.
func IsPasswordValid(password string) bool {
	return len(password) >= MinPasswordLength
}
