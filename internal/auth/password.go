// Package auth provides password hashing for seeded user documents.
//
// The mobile clients and the existing provisioning scripts both produce
// bcrypt hashes, so the seeder must too: a document seeded here has to be
// verifiable by whatever backend later checks the login.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the provisioning scripts have always used.
// Hashes at different costs still verify, but keeping the cost stable keeps
// seeded fixtures byte-comparable across runs of the wider tooling.
const DefaultCost = 12

// bcrypt silently truncates inputs longer than 72 bytes; reject them
// explicitly so callers aren't surprised.
const maxPasswordLength = 72

// HashPassword creates a bcrypt hash of the password at DefaultCost.
// The returned string embeds the salt and cost, so it can be stored as-is.
func HashPassword(password string) (string, error) {
	return hashPasswordCost(password, DefaultCost)
}

func hashPasswordCost(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds maximum length of %d bytes", maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches a stored bcrypt hash.
// The comparison is constant-time. A malformed hash is an error; a plain
// mismatch is (false, nil).
func VerifyPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("verify password: %w", err)
	}
	return true, nil
}
