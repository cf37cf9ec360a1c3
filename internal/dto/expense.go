package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense Request DTOs

// CreateCategoriesRequest contains the category names to bulk-create.
// Names carry no uniqueness or emptiness rules: blank names and empty
// lists are accepted and passed through as-is.
type CreateCategoriesRequest struct {
	Names []string `json:"names" validate:"dive,category_name"`
}

// CreateExpenseRequest contains a new expense record
type CreateExpenseRequest struct {
	Title      string          `json:"title" validate:"required,max=255"`
	Amount     decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	UserID     uuid.UUID       `json:"userId" validate:"required"`
	CategoryID uuid.UUID       `json:"categoryId" validate:"required"`
	Notes      *string         `json:"notes,omitempty"`
	Date       time.Time       `json:"date" validate:"required"`
}

// ListExpensesRequest contains the window and page for an expense listing
type ListExpensesRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	Take      int       `json:"take" validate:"gte=0"`
	Skip      int       `json:"skip" validate:"gte=0"`
}

// UpdateExpenseRequest contains the full replacement state for an expense.
// A nil Notes clears the stored notes; it does not mean "leave unchanged".
type UpdateExpenseRequest struct {
	ID         uuid.UUID       `json:"id" validate:"required"`
	Title      string          `json:"title" validate:"required,max=255"`
	Amount     decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	CategoryID uuid.UUID       `json:"categoryId" validate:"required"`
	Notes      *string         `json:"notes,omitempty"`
	Date       time.Time       `json:"date" validate:"required"`
}

// Expense Response DTOs

// CreateCategoriesResponse reports the bulk-creation outcome
type CreateCategoriesResponse struct {
	Count int `json:"count"`
}
