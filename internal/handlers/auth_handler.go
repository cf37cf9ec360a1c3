package handlers

import (
	"errors"
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email, user name, and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=object{id=string,email=string,userName=string,createdAt=string}} "User created successfully"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001..005"
// @Failure 409 {object} errors.ErrorResponse "Email already exists - USER_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return SendError(c, apierrors.ValidationInvalidEmail)
		case errors.Is(err, services.ErrPasswordMismatch):
			return SendError(c, apierrors.ValidationPasswordMismatch)
		case errors.Is(err, services.ErrWeakPassword):
			return SendError(c, apierrors.ValidationWeakPassword)
		case errors.Is(err, services.ErrPasswordEmpty):
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("password: password cannot be empty"))
		case errors.Is(err, services.ErrPasswordTooLong):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrEmailExists):
			return SendError(c, apierrors.UserEmailExists)
		default:
			return SendSystemError(c, err)
		}
	}

	response := map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"userName":  user.UserName,
		"createdAt": user.CreatedAt,
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    response,
		Message: "User registered successfully",
	})
}

// Login handles user authentication
// @Summary Login user
// @Description Authenticate with email and password, receive a JWT access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful with JWT tokens"
// @Failure 400 {object} errors.ErrorResponse "Unknown user or wrong password - USER_001, USER_003"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apierrors.UserNotFound)
		case errors.Is(err, services.ErrWrongPassword):
			return SendError(c, apierrors.UserWrongPassword)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken handles token renewal
// @Summary Refresh token pair
// @Description Exchange a still-valid token for a fresh access/refresh pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Token presented for renewal"
// @Success 200 {object} dto.TokenResponse "Token renewed successfully"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid or expired token - AUTH_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshToken(req.AccessToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAccessToken) {
			return SendError(c, apierrors.AuthInvalidCredentials, apierrors.WithDetails("Invalid or expired access token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}
