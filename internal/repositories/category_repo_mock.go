package repositories

import (
	"sort"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

// GetAll returns all categories ordered by name.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}
