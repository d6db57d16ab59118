package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories, ordered by name.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
