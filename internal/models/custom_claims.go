package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in our JWT tokens.
//
// Login issues tokens carrying user id and email. The refresh endpoint
// re-signs whatever identity claims the presented token carried, so the
// optional fields round-trip untouched even when empty.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string   `json:"user_id"`
	Email     string   `json:"email,omitempty"`
	UserName  string   `json:"user_name,omitempty"`
	Status    bool     `json:"status,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	TokenType string   `json:"token_type"`
}
