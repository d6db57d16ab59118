package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CheckoutService turns a cart into an order. The whole sequence — read
// cart, compute total, create order and items, clear cart — runs inside
// one transaction: either the order exists with all its items and the
// cart is empty, or nothing changed.
type CheckoutService struct {
	tx       repositories.TransactionManager
	pricing  *PricingService
	mqClient EventPublisher
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(tx repositories.TransactionManager, pricing *PricingService, mqClient EventPublisher) *CheckoutService {
	return &CheckoutService{
		tx:       tx,
		pricing:  pricing,
		mqClient: mqClient,
	}
}

// Checkout creates an order from the user's cart lines and clears the
// cart. The cart lines are read under row locks so two concurrent
// checkouts of the same cart serialize: the second one finds the cart
// empty and gets ErrEmptyCart instead of a duplicate order.
func (s *CheckoutService) Checkout(userID string, tier models.Tier) (*models.Order, error) {
	var created *models.Order

	err := s.tx.WithinTx(func(r repositories.TxRepos) error {
		lines, err := r.Carts().GetByUserForUpdate(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order := &models.Order{
			ID:        uuid.New().String(),
			UserID:    userID,
			OrderDate: time.Now(),
			Status:    models.OrderStatusPending,
			Items:     make([]models.OrderItem, 0, len(lines)),
		}

		lineTotals := make([]float64, 0, len(lines))
		for _, line := range lines {
			product, err := r.Products().GetByID(line.ProductID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					// Product removed since it was carted; the line goes
					// away with the rest of the cart below.
					continue
				}
				return err
			}

			// The item price is the undiscounted catalog price, frozen
			// here; the tier discount only affects the order total.
			order.Items = append(order.Items, models.OrderItem{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})

			pct := s.pricing.DiscountFor(product.CategoryID, tier)
			lineTotals = append(lineTotals, s.pricing.LineTotal(product.Price, line.Quantity, pct))
		}
		if len(order.Items) == 0 {
			// Every line was orphaned; treat it like an empty cart.
			return ErrEmptyCart
		}
		order.TotalPrice = s.pricing.Sum(lineTotals)

		if err := r.Orders().Create(order); err != nil {
			return err
		}
		if err := r.Carts().DeleteByUser(userID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(created)
	return created, nil
}

// publishOrderCreated emits an order.created event after the transaction
// committed. Publish failures are logged, never surfaced to the caller.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping order event publication.")
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":       "order.created",
		"order_id":    order.ID,
		"user_id":     order.UserID,
		"total_price": order.TotalPrice,
		"status":      order.Status,
	})
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.QueueOrderEvents, body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	}
}
