package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/services"
	"expense-tracker-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *AuthHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	reqBody := map[string]string{
		"email":           "test@example.com",
		"userName":        "Test User",
		"password":        "SecurePass123",
		"confirmPassword": "SecurePass123",
	}

	expectedUser := &models.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		UserName:  "Test User",
		CreatedAt: time.Now(),
	}

	s.authService.EXPECT().Register(gomock.Any()).Return(expectedUser, nil).Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", reqBody)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)
}

func (s *AuthHandlerSuite) TestRegister_InvalidEmail() {
	reqBody := map[string]string{
		"email":           "not-an-email",
		"userName":        "Test User",
		"password":        "SecurePass123",
		"confirmPassword": "SecurePass123",
	}

	s.authService.EXPECT().Register(gomock.Any()).Return(nil, services.ErrInvalidEmail).Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", reqBody)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_PasswordMismatch() {
	reqBody := map[string]string{
		"email":           "test@example.com",
		"userName":        "Test User",
		"password":        "SecurePass123",
		"confirmPassword": "OtherPass456",
	}

	s.authService.EXPECT().Register(gomock.Any()).Return(nil, services.ErrPasswordMismatch).Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", reqBody)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", s.decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_DuplicateEmail() {
	reqBody := map[string]string{
		"email":           "taken@example.com",
		"userName":        "Test User",
		"password":        "SecurePass123",
		"confirmPassword": "SecurePass123",
	}

	s.authService.EXPECT().Register(gomock.Any()).Return(nil, services.ErrEmailExists).Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", reqBody)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("USER_002", s.decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_MissingFields() {
	_, c := s.postJSON("/api/v1/auth/register", map[string]string{"email": "test@example.com"})

	// Validation errors bubble up to the central HTTP error handler
	err := s.handler.Register(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	reqBody := map[string]string{
		"email":    "test@example.com",
		"password": "SecurePass123",
	}

	expected := &dto.TokenResponse{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		Status:       true,
	}

	s.authService.EXPECT().Login(gomock.Any()).Return(expected, nil).Times(1)

	rec, c := s.postJSON("/api/v1/auth/login", reqBody)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
	s.Equal("access-token", tokens.Token)
	s.Equal("refresh-token", tokens.RefreshToken)
	s.True(tokens.Status)
}

func (s *AuthHandlerSuite) TestLogin_UnknownUser() {
	reqBody := map[string]string{
		"email":    "nobody@example.com",
		"password": "SecurePass123",
	}

	s.authService.EXPECT().Login(gomock.Any()).Return(nil, services.ErrUserNotFound).Times(1)

	rec, c := s.postJSON("/api/v1/auth/login", reqBody)

	s.NoError(s.handler.Login(c))
	// The unknown account is reported as a client fault, existence leak and all
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("USER_001", s.decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_WrongPassword() {
	reqBody := map[string]string{
		"email":    "test@example.com",
		"password": "WrongPass123",
	}

	s.authService.EXPECT().Login(gomock.Any()).Return(nil, services.ErrWrongPassword).Times(1)

	rec, c := s.postJSON("/api/v1/auth/login", reqBody)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("USER_003", s.decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRefreshToken_Success() {
	reqBody := map[string]string{"accessToken": "presented-token"}

	expected := &dto.TokenResponse{
		Token:        "new-access-token",
		RefreshToken: "new-refresh-token",
		Status:       true,
	}

	s.authService.EXPECT().RefreshToken("presented-token").Return(expected, nil).Times(1)

	rec, c := s.postJSON("/api/v1/auth/refresh", reqBody)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
	s.Equal("new-access-token", tokens.Token)
}

func (s *AuthHandlerSuite) TestRefreshToken_InvalidToken() {
	reqBody := map[string]string{"accessToken": "garbage"}

	s.authService.EXPECT().RefreshToken("garbage").Return(nil, services.ErrInvalidAccessToken).Times(1)

	rec, c := s.postJSON("/api/v1/auth/refresh", reqBody)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.decodeError(rec).Error.Code)
}
