package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryNotFound = errors.New("category not found")
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ExpenseService handles category management, expense CRUD, and the
// per-category spending report.
type ExpenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategories bulk-creates one category per submitted name in a single
// batch insert. Names are not deduplicated and not checked against existing
// categories: submitting "Food" twice yields two distinct category rows.
func (s *ExpenseService) CreateCategories(names []string) ([]models.Category, error) {
	categories := make([]*models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, &models.Category{Name: name})
	}

	if err := s.categoryRepo.CreateBatch(categories); err != nil {
		s.logger.Error("failed to create categories", "error", err, "count", len(names))
		return nil, fmt.Errorf("failed to create categories: %w", err)
	}

	s.logger.Info("categories created", "count", len(categories))

	created := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		created = append(created, *c)
	}
	return created, nil
}

// Categories returns an offset-based page of categories
func (s *ExpenseService) Categories(take, skip int) ([]models.Category, error) {
	take = normalizePageSize(take)

	categories, err := s.categoryRepo.List(skip, take)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// CreateExpense records a new expense. Referential integrity of the user and
// category ids is left to the database foreign keys.
func (s *ExpenseService) CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		Title:      req.Title,
		Amount:     req.Amount,
		Date:       req.Date,
		Notes:      req.Notes,
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", req.UserID)
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info("expense created", "expense_id", expense.ID, "user_id", expense.UserID)

	return expense, nil
}

// Expenses returns a page of one user's expenses inside a date window,
// most recent first
func (s *ExpenseService) Expenses(req *dto.ListExpensesRequest) ([]models.Expense, error) {
	take := normalizePageSize(req.Take)

	expenses, err := s.expenseRepo.ListByUserAndDateRange(req.UserID, req.StartDate, req.EndDate, req.Skip, take)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense replaces the mutable fields of an existing expense. The
// existence check runs before any write, so an unknown id never reaches
// the update statement.
func (s *ExpenseService) UpdateExpense(req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	existing, err := s.expenseRepo.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	existing.Title = req.Title
	existing.Amount = req.Amount
	existing.Date = req.Date
	existing.Notes = req.Notes
	existing.CategoryID = req.CategoryID

	if err := s.expenseRepo.Update(existing); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		s.logger.Error("failed to update expense", "error", err, "expense_id", req.ID)
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.logger.Info("expense updated", "expense_id", existing.ID)

	return existing, nil
}

// RemoveExpense deletes an existing expense and returns the record as it was
// before deletion.
func (s *ExpenseService) RemoveExpense(id uuid.UUID) (*models.Expense, error) {
	existing, err := s.expenseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.expenseRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.Info("expense removed", "expense_id", id)

	return existing, nil
}

// ExpensesReport aggregates one user's spending per category inside the
// window. Rows come back exactly as the aggregation query produces them.
func (s *ExpenseService) ExpensesReport(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryReportRow, error) {
	rows, err := s.expenseRepo.CategoryReport(userID, startDate, endDate)
	if err != nil {
		s.logger.Error("failed to build expenses report", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to build expenses report: %w", err)
	}

	return rows, nil
}

func normalizePageSize(take int) int {
	if take <= 0 {
		return DefaultPageSize
	}
	if take > MaxPageSize {
		return MaxPageSize
	}
	return take
}
