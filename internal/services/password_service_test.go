package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	passwordService PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	// Cost 4 keeps hashing fast in tests; validation rules don't depend on cost
	s.passwordService = NewPasswordService(bcrypt.MinCost)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "SecurePass123", nil},
		{"minimum length", "Abcdefg1", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Abc1", ErrWeakPassword},
		{"no uppercase", "securepass123", ErrWeakPassword},
		{"no lowercase", "SECUREPASS123", ErrWeakPassword},
		{"no digit", "SecurePassword", ErrWeakPassword},
		{"special characters rejected", "SecurePass123!", ErrWeakPassword},
		{"whitespace rejected", "Secure Pass123", ErrWeakPassword},
		{"too long", strings.Repeat("Aa1", 25), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.passwordService.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *PasswordServiceTestSuite) TestHashPassword_ProducesVerifiableHash() {
	hash, err := s.passwordService.HashPassword("SecurePass123")

	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SecurePass123", hash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("SecurePass123")))
}

func (s *PasswordServiceTestSuite) TestHashPassword_EmptyPassword() {
	hash, err := s.passwordService.HashPassword("")

	s.Equal(ErrPasswordEmpty, err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_SaltsEachHash() {
	first, err := s.passwordService.HashPassword("SecurePass123")
	s.Require().NoError(err)

	second, err := s.passwordService.HashPassword("SecurePass123")
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.passwordService.HashPassword("SecurePass123")
	s.Require().NoError(err)

	s.True(s.passwordService.ComparePassword("SecurePass123", hash))
	s.False(s.passwordService.ComparePassword("WrongPass123", hash))
	s.False(s.passwordService.ComparePassword("SecurePass123", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestDefaultCost() {
	service := NewPasswordService(0)

	hash, err := service.HashPassword("SecurePass123")
	s.Require().NoError(err)

	cost, err := bcrypt.Cost([]byte(hash))
	s.NoError(err)
	s.Equal(BCryptCost, cost)
}
