package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create inserts the order and its items in one statement batch.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves all orders owned by a user, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("order_date desc").Find(&orders, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetAll retrieves every order, newest first. Staff listing only.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("order_date desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus updates only the status column; order_date and the rest of
// the row stay untouched.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the order and its items. The item delete is explicit so
// the cascade does not depend on database-level foreign keys being on.
func (r *GORMOrderRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete items for order %s: %w", id, err)
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
