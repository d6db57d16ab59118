package services

import (
	"fmt"

	"storefront/internal/cache"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/util"

	"github.com/go-playground/validator/v10"
)

// CatalogService handles business logic for products and categories:
// browse, paginated search and the staff CRUD behind the admin routes.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	productCache *cache.ProductCache
	validate     *validator.Validate
}

// NewCatalogService creates a new CatalogService. productCache may be nil.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, productCache *cache.ProductCache) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		productCache: productCache,
		validate:     validator.New(),
	}
}

// SearchResult is one page of products plus the data the pagination UI
// needs.
type SearchResult struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Search returns products matching a free-text query (case-insensitive
// substring on name or description) and/or a category, ANDed when both
// are given. pageSize defaults to 10.
func (s *CatalogService) Search(query, categoryID string, page, pageSize int) (*SearchResult, error) {
	offset, limit := util.Calculate(page, pageSize)

	items, total, err := s.productRepo.Search(query, categoryID, offset, limit)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &SearchResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: limit,
	}, nil
}

// GetProduct retrieves a single product, via the cache when one is
// configured.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	if product, ok := s.productCache.Get(id); ok {
		return product, nil
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.productCache.Set(product)
	return product, nil
}

// CreateProduct validates and stores a new product. A negative price is
// a validation error, never persisted.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

// UpdateProduct validates and saves an existing product, dropping any
// stale cache entry.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.productCache.Invalidate(product.ID)
	return nil
}

// DeleteProduct removes a product and its cache entry.
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.productCache.Invalidate(id)
	return nil
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory validates and stores a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	if err := s.validate.Struct(category); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.categoryRepo.Create(category)
}
