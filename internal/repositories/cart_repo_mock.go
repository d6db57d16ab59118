package repositories

import (
	"sort"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

func (r *MockCartRepository) listByUser(userID string) []models.CartItem {
	var items []models.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items
}

// GetByUser returns all cart lines for a user.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listByUser(userID), nil
}

// GetByUserForUpdate behaves like GetByUser; the in-memory mock has no
// transactions to lock against.
func (r *MockCartRepository) GetByUserForUpdate(userID string) ([]models.CartItem, error) {
	return r.GetByUser(userID)
}

// GetByID returns a cart line by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// GetByUserAndProduct returns the user's line for a product, if any.
func (r *MockCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			found := it
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *MockCartRepository) UpdateQuantity(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return nil
}

// Delete removes a single cart line.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// DeleteByUser removes every cart line belonging to a user.
func (r *MockCartRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, it := range r.items {
		if it.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
