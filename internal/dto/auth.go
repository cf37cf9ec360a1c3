package dto

// Auth Request DTOs

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Email           string `json:"email" validate:"required"`
	UserName        string `json:"userName" validate:"required,min=1,max=100"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the token presented for renewal
type RefreshTokenRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains an issued access/refresh token pair
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Status       bool   `json:"status"`
}
