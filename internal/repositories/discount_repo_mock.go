package repositories

import (
	"sync"

	"storefront/internal/models"
)

// MockDiscountRepository is an in-memory implementation of DiscountRepository.
type MockDiscountRepository struct {
	discounts []models.Discount
	mu        sync.RWMutex
}

// NewMockDiscountRepository creates a new instance of MockDiscountRepository.
func NewMockDiscountRepository() *MockDiscountRepository {
	return &MockDiscountRepository{}
}

// Add registers a discount row.
func (r *MockDiscountRepository) Add(discount models.Discount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discounts = append(r.discounts, discount)
}

// GetByCategoryAndTier returns the first matching discount row.
func (r *MockDiscountRepository) GetByCategoryAndTier(categoryID string, tier models.Tier) (*models.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.discounts {
		if d.CategoryID == categoryID && d.Tier == tier {
			found := d
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
