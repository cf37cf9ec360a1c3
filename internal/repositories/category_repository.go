package repositories

import (
	"errors"
	"fmt"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// CreateBatch inserts one row per category in a single statement.
// No name uniqueness is enforced; duplicates are allowed.
func (r *CategoryRepository) CreateBatch(categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	if err := r.db.Create(categories).Error; err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{ID: id}
	if err := r.db.First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// List retrieves categories with offset-based pagination
func (r *CategoryRepository) List(offset, limit int) ([]models.Category, error) {
	var categories []models.Category

	if err := r.db.Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Count returns the total number of categories
func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}
