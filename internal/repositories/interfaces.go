package repositories

import (
	"time"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CountByEmail(email string) (int64, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	CreateBatch(categories []*models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	List(offset, limit int) ([]models.Category, error)
	Count() (int64, error)
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	ListByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time, offset, limit int) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uuid.UUID) error
	CategoryReport(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryReportRow, error)
}
