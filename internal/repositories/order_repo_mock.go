package repositories

import (
	"sort"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order with its items.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

// GetByUser returns the user's orders, newest order_date first.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	return orders, nil
}

// GetAll returns every order, newest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	return orders, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order and its items.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
