package repositories

import "storefront/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Search filters by case-insensitive substring on name OR description
	// (when query is non-empty) and by exact category (when categoryID is
	// non-empty), both conditions ANDed. It returns one page of results
	// plus the total match count for pagination.
	Search(query, categoryID string, offset, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
