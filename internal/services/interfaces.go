package services

import (
	"time"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	// Register validates and creates a new user account
	Register(req *dto.RegisterRequest) (*models.User, error)

	// Login authenticates a user and issues an access/refresh token pair
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// RefreshToken verifies the presented token and reissues a fresh pair
	// carrying the same identity claims. Purely token-based: no store lookup.
	RefreshToken(accessToken string) (*dto.TokenResponse, error)
}

// TokenServiceInterface defines the contract for JWT issuance and verification
type TokenServiceInterface interface {
	// GenerateLoginPair issues an access/refresh pair for an authenticated user
	GenerateLoginPair(user *models.User) (*dto.TokenResponse, error)

	// RenewPair reissues an access/refresh pair from previously verified claims
	RenewPair(claims *models.CustomClaims) (*dto.TokenResponse, error)

	// VerifyToken checks signature and expiry and returns the embedded claims.
	// This is the primitive the authentication middleware consumes.
	VerifyToken(tokenString string) (*models.CustomClaims, error)

	// ExtractTokenFromHeader extracts the JWT from an Authorization header
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password hashing and validation
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// ExpenseServiceInterface defines the contract for category and expense operations
type ExpenseServiceInterface interface {
	// CreateCategories bulk-creates one category per name, duplicates permitted
	CreateCategories(names []string) ([]models.Category, error)

	// Categories returns an offset-based page of categories
	Categories(take, skip int) ([]models.Category, error)

	// CreateExpense records a new expense referencing an existing user and category
	CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error)

	// Expenses returns a page of one user's expenses inside a date window,
	// most recent first
	Expenses(req *dto.ListExpensesRequest) ([]models.Expense, error)

	// UpdateExpense mutates an existing expense; the existence check runs
	// strictly before any write
	UpdateExpense(req *dto.UpdateExpenseRequest) (*models.Expense, error)

	// RemoveExpense deletes an existing expense and returns the deleted record
	RemoveExpense(id uuid.UUID) (*models.Expense, error)

	// ExpensesReport aggregates one user's spending per category for a window
	ExpensesReport(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryReportRow, error)
}
