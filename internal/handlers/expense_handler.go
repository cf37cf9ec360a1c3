package handlers

import (
	"errors"
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD and reporting endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense handles expense creation
// @Summary Create an expense
// @Description Record a new expense referencing an existing user and category
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} SuccessResponse{data=models.Expense} "Expense created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    expense,
		Message: "Expense created successfully",
	})
}

// ListExpenses handles expense listing for a user inside a date window
// @Summary List expenses
// @Description Returns a page of one user's expenses inside a date window, most recent first
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param userId query string true "User ID"
// @Param startDate query string true "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string true "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param take query int false "Page size" default(50)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} SuccessResponse{data=[]models.Expense} "Expenses"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001, VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("userId: must be a valid UUID"))
	}

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	req := dto.ListExpensesRequest{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Take:      getIntParam(c, "take", 50),
		Skip:      getIntParam(c, "skip", 0),
	}

	expenses, err := h.expenseService.Expenses(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: expenses,
		Meta: map[string]interface{}{
			"take": req.Take,
			"skip": req.Skip,
		},
	})
}

// UpdateExpense handles full replacement of an expense
// @Summary Update an expense
// @Description Replace the mutable fields of an existing expense. Omitted notes clear the stored notes.
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Replacement state"
// @Success 200 {object} SuccessResponse{data=models.Expense} "Expense updated"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Expense not found - EXPENSE_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("id: must be a valid UUID"))
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	// The path parameter is authoritative for the target expense
	req.ID = id

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(&req)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    expense,
		Message: "Expense updated successfully",
	})
}

// RemoveExpense handles expense deletion
// @Summary Remove an expense
// @Description Delete an existing expense and return the deleted record
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} SuccessResponse{data=models.Expense} "Expense removed"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Expense not found - EXPENSE_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) RemoveExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("id: must be a valid UUID"))
	}

	expense, err := h.expenseService.RemoveExpense(id)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    expense,
		Message: "Expense removed successfully",
	})
}

// ExpensesReport handles the per-category spending report
// @Summary Expenses report
// @Description Aggregate one user's spending per category inside a date window
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param userId query string true "User ID"
// @Param startDate query string true "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string true "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=[]models.CategoryReportRow} "Report rows"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001, VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /expenses/report [get]
func (h *ExpenseHandler) ExpensesReport(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("userId: must be a valid UUID"))
	}

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	rows, err := h.expenseService.ExpensesReport(userID, startDate, endDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
	})
}
