package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a manager passcode with bcrypt. Empty passcodes are rejected.
func HashPassword(passcode string) (string, error) {
	if passcode == "" {
		return "", fmt.Errorf("passcode cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether passcode matches a bcrypt hash.
func CheckPasswordHash(passcode, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
