package handlers

import (
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles expense category endpoints
type CategoryHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(expenseService services.ExpenseServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		expenseService: expenseService,
	}
}

// CreateCategories handles bulk category creation
// @Summary Create categories
// @Description Bulk-create one category per submitted name. Names are not deduplicated.
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoriesRequest true "Category names"
// @Success 201 {object} SuccessResponse{data=dto.CreateCategoriesResponse} "Categories created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategories(c echo.Context) error {
	var req dto.CreateCategoriesRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := h.expenseService.CreateCategories(req.Names)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.CreateCategoriesResponse{Count: len(created)},
		Message: "Categories created successfully",
	})
}

// ListCategories handles category listing
// @Summary List categories
// @Description Returns an offset-based page of categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param take query int false "Page size" default(50)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} SuccessResponse{data=[]models.Category} "Categories"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	take := getIntParam(c, "take", 50)
	skip := getIntParam(c, "skip", 0)

	categories, err := h.expenseService.Categories(take, skip)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: categories,
		Meta: map[string]interface{}{
			"take": take,
			"skip": skip,
		},
	})
}
