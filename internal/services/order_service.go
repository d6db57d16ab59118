package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderService handles the order ledger: history, detail, deletion and
// the staff-only status transition. Orders are immutable except for
// status.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListForUser returns the user's orders, newest order_date first.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// Get returns one order after the ownership check. An order owned by a
// different user reads as not found, so its existence never leaks.
func (s *OrderService) Get(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotFound
	}
	return order, nil
}

// Delete removes the user's order and, via the repository, its items.
func (s *OrderService) Delete(userID, orderID string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrNotFound
	}
	return s.orderRepo.Delete(orderID)
}

// ListAll returns every order in the ledger. Staff only; the handler
// enforces the guard.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus transitions an order between the two allowed states.
// Staff only and unconditioned by ownership.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) error {
	if status != models.OrderStatusPending && status != models.OrderStatusCompleted {
		return fmt.Errorf("%w: invalid order status %q", ErrValidation, status)
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}
