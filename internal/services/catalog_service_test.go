package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCatalogFixture(t *testing.T) (*services.CatalogService, *repositories.MockProductRepository, *repositories.MockCategoryRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	return services.NewCatalogService(productRepo, categoryRepo, nil), productRepo, categoryRepo
}

func TestCatalogService_CreateProduct(t *testing.T) {
	catalogService, productRepo, categoryRepo := newCatalogFixture(t)
	category := &models.Category{Name: "Apparel"}
	assert.NoError(t, categoryRepo.Create(category))

	product := &models.Product{Name: "Shirt", Price: 19.99, CategoryID: category.ID}
	assert.NoError(t, catalogService.CreateProduct(product))
	assert.NotEmpty(t, product.ID)

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Shirt", stored.Name)
}

func TestCatalogService_CreateProductNegativePrice(t *testing.T) {
	catalogService, productRepo, categoryRepo := newCatalogFixture(t)
	category := &models.Category{Name: "Apparel"}
	assert.NoError(t, categoryRepo.Create(category))

	err := catalogService.CreateProduct(&models.Product{Name: "Shirt", Price: -1, CategoryID: category.ID})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Nothing persisted.
	items, total, _ := productRepo.Search("", "", 0, 10)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), total)
}

func TestCatalogService_CreateProductUnknownCategory(t *testing.T) {
	catalogService, _, _ := newCatalogFixture(t)

	err := catalogService.CreateProduct(&models.Product{Name: "Shirt", Price: 10, CategoryID: "missing"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCatalogService_UpdateProductNegativePrice(t *testing.T) {
	catalogService, productRepo, categoryRepo := newCatalogFixture(t)
	category := &models.Category{Name: "Apparel"}
	assert.NoError(t, categoryRepo.Create(category))
	product := &models.Product{Name: "Shirt", Price: 10, CategoryID: category.ID}
	assert.NoError(t, catalogService.CreateProduct(product))

	product.Price = -5
	assert.ErrorIs(t, catalogService.UpdateProduct(product), services.ErrValidation)

	stored, _ := productRepo.GetByID(product.ID)
	assert.Equal(t, 10.0, stored.Price)
}

func TestCatalogService_Search(t *testing.T) {
	catalogService, productRepo, _ := newCatalogFixture(t)
	seed := []models.Product{
		{ID: "p-1", Name: "Blue Shirt", Description: "Cotton", CategoryID: "cat-1", Price: 10},
		{ID: "p-2", Name: "Red Shirt", Description: "Linen", CategoryID: "cat-1", Price: 12},
		{ID: "p-3", Name: "Mug", Description: "Ceramic, shirt print", CategoryID: "cat-2", Price: 5},
		{ID: "p-4", Name: "Poster", Description: "Art", CategoryID: "cat-2", Price: 3},
	}
	for i := range seed {
		assert.NoError(t, productRepo.Create(&seed[i]))
	}

	// Case-insensitive substring on name or description.
	result, err := catalogService.Search("shirt", "", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Items, 3)

	// Category alone.
	result, err = catalogService.Search("", "cat-2", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	// Query and category ANDed.
	result, err = catalogService.Search("shirt", "cat-2", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, "Mug", result.Items[0].Name)

	// No match is an empty page, not an error.
	result, err = catalogService.Search("xyzzy", "", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.Items)
}

func TestCatalogService_SearchPagination(t *testing.T) {
	catalogService, productRepo, _ := newCatalogFixture(t)
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	for i, name := range names {
		assert.NoError(t, productRepo.Create(&models.Product{
			ID: "p-" + name, Name: name, CategoryID: "cat-1", Price: float64(i + 1),
		}))
	}

	page1, err := catalogService.Search("", "", 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), page1.Total)
	assert.Len(t, page1.Items, 2)
	assert.Equal(t, "Alpha", page1.Items[0].Name)
	assert.Equal(t, "Bravo", page1.Items[1].Name)

	page3, err := catalogService.Search("", "", 3, 2)
	assert.NoError(t, err)
	assert.Len(t, page3.Items, 1)
	assert.Equal(t, "Echo", page3.Items[0].Name)

	// Past the end: empty items, same total.
	page4, err := catalogService.Search("", "", 4, 2)
	assert.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, int64(5), page4.Total)

	// Page and size fall back to sane defaults.
	fallback, err := catalogService.Search("", "", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, fallback.Page)
	assert.Equal(t, 10, fallback.PageSize)
	assert.Len(t, fallback.Items, 5)
}

func TestCatalogService_GetProductWithoutCache(t *testing.T) {
	catalogService, productRepo, _ := newCatalogFixture(t)
	assert.NoError(t, productRepo.Create(&models.Product{ID: "p-1", Name: "Shirt", CategoryID: "cat-1", Price: 10}))

	product, err := catalogService.GetProduct("p-1")
	assert.NoError(t, err)
	assert.Equal(t, "Shirt", product.Name)

	_, err = catalogService.GetProduct("missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	catalogService, _, _ := newCatalogFixture(t)

	assert.ErrorIs(t, catalogService.CreateCategory(&models.Category{}), services.ErrValidation)
	assert.NoError(t, catalogService.CreateCategory(&models.Category{Name: "Books"}))
	assert.NoError(t, catalogService.CreateCategory(&models.Category{Name: "Apparel"}))

	categories, err := catalogService.ListCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Apparel", categories[0].Name)
	assert.Equal(t, "Books", categories[1].Name)
}
