package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// categoryReportQuery aggregates spending per category for one user inside a
// date window. The grouping key is (category name, user id) and rows come back
// ordered by the owner's email; date is selected un-aggregated, so each group
// reports whichever single date the store picks for it. That shape is part of
// the report contract and must stay as is.
const categoryReportQuery = `
	SELECT SUM(e.amount) AS amount, c.name AS category, u.user_name AS user_name, e.date AS date
	FROM expenses AS e
	JOIN categories AS c ON e.category_id = c.id
	JOIN users AS u ON e.user_id = u.id
	WHERE e.date >= ?
	AND e.date <= ?
	AND e.user_id = ?
	GROUP BY c.name, e.user_id
	ORDER BY u.email ASC
`

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		db: db,
	}
}

// Create persists a new expense and reloads it with its category relation.
// Referential integrity (existing user and category) is enforced by the
// database constraints at write time.
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if err := r.db.Preload("Category").First(expense, "id = ?", expense.ID).Error; err != nil {
		return fmt.Errorf("failed to reload expense: %w", err)
	}

	return nil
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return &expense, nil
}

// ListByUserAndDateRange retrieves a page of expenses owned by userID with an
// occurrence date inside [startDate, endDate], most recent first, with the
// category and user relations populated.
func (r *ExpenseRepository) ListByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time, offset, limit int) ([]models.Expense, error) {
	var expenses []models.Expense

	if err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Preload("Category").
		Preload("User").
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// Update overwrites the mutable fields of an expense and reloads it.
// Notes is written through as-is: a nil pointer stores NULL, which is how an
// omitted notes field clears the column instead of leaving it unchanged.
func (r *ExpenseRepository) Update(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	updates := map[string]interface{}{
		"title":       expense.Title,
		"amount":      expense.Amount,
		"date":        expense.Date,
		"notes":       expense.Notes,
		"category_id": expense.CategoryID,
		"updated_at":  time.Now(),
	}

	result := r.db.Model(&models.Expense{}).Where("id = ?", expense.ID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	if err := r.db.Preload("Category").First(expense, "id = ?", expense.ID).Error; err != nil {
		return fmt.Errorf("failed to reload expense: %w", err)
	}

	return nil
}

// Delete removes an expense by ID
func (r *ExpenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// CategoryReport runs the parameterized aggregation query for one user and
// window. A window with no matching expenses yields an empty slice.
func (r *ExpenseRepository) CategoryReport(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryReportRow, error) {
	rows := make([]models.CategoryReportRow, 0)

	if err := r.db.Raw(categoryReportQuery, startDate, endDate, userID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to build category report: %w", err)
	}

	return rows, nil
}
