package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService handles JWT token generation and verification using the
// process-wide shared HMAC secret. Issued pairs are never stored server-side;
// the token itself is the session.
type TokenService struct {
	config.JWTConfig
}

// NewTokenService creates a new token service from JWT configuration
func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		JWTConfig: *jwtConfig,
	}
}

// GenerateLoginPair issues an access token and a refresh token for an
// authenticated user. Both carry the same identity claims; only lifetime
// and token type differ.
func (ts *TokenService) GenerateLoginPair(user *models.User) (*dto.TokenResponse, error) {
	if user == nil {
		return nil, errors.New("user cannot be nil")
	}

	identity := models.CustomClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		UserName: user.UserName,
	}

	accessToken, err := ts.sign(identity, TokenTypeAccess, ts.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := ts.sign(identity, TokenTypeRefresh, ts.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &dto.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Status:       true,
	}, nil
}

// RenewPair reissues a token pair carrying the identity claims of a
// previously verified token. The reissued refresh token gets the renewal
// lifetime, which is shorter than the one granted at login.
func (ts *TokenService) RenewPair(claims *models.CustomClaims) (*dto.TokenResponse, error) {
	if claims == nil {
		return nil, errors.New("claims cannot be nil")
	}

	identity := models.CustomClaims{
		UserID:   claims.UserID,
		Email:    claims.Email,
		UserName: claims.UserName,
		Status:   claims.Status,
		Roles:    claims.Roles,
	}

	accessToken, err := ts.sign(identity, TokenTypeAccess, ts.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := ts.sign(identity, TokenTypeRefresh, ts.RenewedRefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &dto.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Status:       true,
	}, nil
}

// VerifyToken validates signature, expiry, and issuer and returns the claims.
// No token-type distinction is made here: renewal accepts whichever of the
// pair the caller presents, matching the observed protocol.
func (ts *TokenService) VerifyToken(tokenString string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.CustomClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ts.Issuer {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) sign(identity models.CustomClaims, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()

	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   identity.UserID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID:    identity.UserID,
		Email:     identity.Email,
		UserName:  identity.UserName,
		Status:    identity.Status,
		Roles:     identity.Roles,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.Secret)
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.Secret, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
