package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService([]byte("test-secret-key-with-enough-entropy"), time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(secret []byte, accessLifetime time.Duration) services.TokenServiceInterface {
	return services.NewTokenService(&config.JWTConfig{
		Secret:                      secret,
		Issuer:                      "test-issuer",
		AccessTokenDuration:         accessLifetime,
		RefreshTokenDuration:        2 * time.Hour,
		RenewedRefreshTokenDuration: time.Hour,
	})
}

func (s *AuthMiddlewareSuite) loginToken(ts services.TokenServiceInterface, user *models.User) string {
	tokens, err := ts.GenerateLoginPair(user)
	s.Require().NoError(err)
	return tokens.Token
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		UserName: "Test User",
	}

	token := s.loginToken(s.tokenService, user)

	handler := middleware(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		s.Equal(user.UserName, c.Get("user_name"))
		s.NotEmpty(c.Get("token_jti"))

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// SendError writes the response and returns nil
	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "NotBearerToken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService([]byte("test-secret-key-with-enough-entropy"), -time.Minute)
	middleware := RequireAuth(shortTokenService)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		UserName: "Test User",
	}

	token := s.loginToken(shortTokenService, user)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentSecret() {
	otherService := s.createTokenService([]byte("a-completely-different-secret-key"), time.Hour)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		UserName: "Test User",
	}

	token := s.loginToken(otherService, user)

	middleware := RequireAuth(s.tokenService)
	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_RefreshTokenAlsoAccepted() {
	// Verification does not distinguish token types; a refresh token passes
	// the same gate as an access token.
	middleware := RequireAuth(s.tokenService)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		UserName: "Test User",
	}

	tokens, err := s.tokenService.GenerateLoginPair(user)
	s.Require().NoError(err)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
