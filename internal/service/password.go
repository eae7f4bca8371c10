package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	minPasswordLength = 12

	passwordSymbols = `!@#$%^&*(),.?":{}|<>`
)

// Deny list of passwords rejected regardless of composition,
// matched case-insensitively.
var commonPasswords = []string{
	"password", "123456", "password123", "admin", "qwerty",
	"letmein", "welcome", "monkey", "1234567890", "abc123",
	"password1", "123456789", "welcome123", "admin123",
}

// WeakPasswordError reports which strength rule a candidate password
// violated. The password is never hashed when this is returned.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return e.Reason
}

// HashPassword validates the password against the strength policy and
// returns its bcrypt hash.
func HashPassword(password string) (string, error) {
	if err := validatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against a stored hash.
// A mismatch is a plain false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validatePasswordStrength applies the policy rules in order; the first
// violated rule wins.
func validatePasswordStrength(password string) error {
	// Character count, not bytes: the request-validation layer counts
	// characters too, and the two floors must agree.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return &WeakPasswordError{Reason: "Password must be at least 12 characters long"}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		return &WeakPasswordError{Reason: "Password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &WeakPasswordError{Reason: "Password must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &WeakPasswordError{Reason: "Password must contain at least one number"}
	}
	if !hasSymbol {
		return &WeakPasswordError{Reason: "Password must contain at least one special character"}
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if lowered == common {
			return &WeakPasswordError{Reason: "Password is too common, please choose a stronger password"}
		}
	}

	return nil
}
