package services

import (
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordMismatch   = errors.New("password and confirm password don't match")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidAccessToken = errors.New("invalid access token")
)

// AuthService handles registration, login, and token renewal. It holds no
// state between calls; sessions live entirely inside the signed tokens.
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Register validates registration input, checks email uniqueness, and stores
// the new account with a hashed credential. All validation runs before any
// persistence access. The plaintext password never appears in errors or logs.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	s.logger.Debug("registering user", "email", req.Email, "user_name", req.UserName)

	if !models.IsValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		UserName:     req.UserName,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			// The uniqueness index is the real guarantee; the count check
			// above can lose a race between two concurrent registrations.
			return nil, ErrEmailExists
		}
		s.logger.Error("failed to create user", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

// Login authenticates a user and issues a token pair. A missing account is
// reported as "user not found"; the existence leak is accepted behavior.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	s.logger.Debug("logging in user", "email", req.Email)

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to look up user", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	tokens, err := s.tokenService.GenerateLoginPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return tokens, nil
}

// RefreshToken verifies the presented token and reissues a pair carrying the
// same identity claims. Renewal is purely a function of token validity: the
// user store is never consulted and there is no revocation check, so a
// still-valid token can be renewed indefinitely. Known limitation, kept as is.
func (s *AuthService) RefreshToken(accessToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.VerifyToken(accessToken)
	if err != nil {
		s.logger.Warn("token refresh rejected", "error", err)
		return nil, ErrInvalidAccessToken
	}

	tokens, err := s.tokenService.RenewPair(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to renew tokens: %w", err)
	}

	s.logger.Info("tokens renewed", "user_id", claims.UserID)

	return tokens, nil
}
