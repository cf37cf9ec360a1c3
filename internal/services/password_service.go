package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost matches the cost factor the account base was hashed with
	BCryptCost = 10

	MinPasswordLength = 8
	MaxPasswordLength = 72 // Bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty   = errors.New("password cannot be empty")
	ErrPasswordTooLong = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrWeakPassword    = errors.New("password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one number")

	// Strength rule inherited from the original policy: at least 8 characters
	// drawn only from letters and digits, with at least one lowercase, one
	// uppercase, and one digit.
	passwordShapeRegex = regexp.MustCompile(`^[A-Za-z\d]{8,}$`)
	lowercaseRegex     = regexp.MustCompile(`[a-z]`)
	uppercaseRegex     = regexp.MustCompile(`[A-Z]`)
	numberRegex        = regexp.MustCompile(`\d`)
)

// PasswordService handles password hashing and validation
type PasswordService struct {
	cost int
}

// NewPasswordService creates a new password service with the given bcrypt cost
func NewPasswordService(cost int) PasswordServiceInterface {
	if cost == 0 {
		cost = BCryptCost
	}
	return &PasswordService{
		cost: cost,
	}
}

// ValidatePassword checks if a password meets the strength requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if !passwordShapeRegex.MatchString(password) {
		return ErrWeakPassword
	}

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!numberRegex.MatchString(password) {
		return ErrWeakPassword
	}

	return nil
}

// HashPassword hashes a password using bcrypt. Callers validate first;
// hashing itself accepts any non-empty input.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword compares a plain password with a hashed password
// Returns true if they match, false otherwise
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	// bcrypt.CompareHashAndPassword provides timing-attack resistance
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
