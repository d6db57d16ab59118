package repositories

import "storefront/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order together with its items.
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// GetByUser returns the user's orders, newest order_date first.
	GetByUser(userID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	// Delete removes the order and cascades to its items.
	Delete(id string) error
}
