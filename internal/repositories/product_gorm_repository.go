package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// Search retrieves one page of products matching the query and category
// filters, plus the total count of matches.
func (r *GORMProductRepository) Search(query, categoryID string, offset, limit int) ([]models.Product, int64, error) {
	tx := r.db.Model(&models.Product{})

	if query != "" {
		// LIKE is case-insensitive on SQLite; LOWER() makes Postgres match.
		pattern := "%" + query + "%"
		tx = tx.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if categoryID != "" {
		tx = tx.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := tx.Preload("Category").Order("name asc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID, with its category.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database. Save would insert
// a new row for an unknown ID, so existence is checked first.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var existing models.Product
	if err := r.db.Select("id").First(&existing, "id = ?", product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	// Save updates all fields, including zero values.
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
