package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for the shopping cart. Every method
// takes the acting user's ID explicitly; nothing is read from ambient
// state.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	pricing     *PricingService
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, pricing *PricingService) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pricing:     pricing,
	}
}

// CartLine is one cart line joined with its product's current state.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// CartView is the cart as presented to the user. Total reflects current
// catalog prices; nothing is frozen until checkout.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// GetCart returns the user's cart lines with a live total.
func (s *CartService) GetCart(userID string) (*CartView, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	lineTotals := make([]float64, 0, len(items))

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Product removed from the catalog; drop the dead line so
				// the cart stays checkoutable.
				if delErr := s.cartRepo.Delete(item.ID); delErr != nil && !errors.Is(delErr, repositories.ErrNotFound) {
					return nil, delErr
				}
				continue
			}
			return nil, err
		}

		lineTotal := s.pricing.LineTotal(product.Price, item.Quantity, 0)
		view.Items = append(view.Items, CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		lineTotals = append(lineTotals, lineTotal)
	}

	view.Total = s.pricing.Sum(lineTotals)
	return view, nil
}

// Add puts quantity units of a product into the user's cart. An existing
// line for the same product is incremented, never duplicated.
func (s *CartService) Add(userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return s.cartRepo.Create(&models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+quantity)
}

// SetQuantity updates a cart line's quantity. Zero or negative removes
// the line. A line owned by another user reads as not found.
func (s *CartService) SetQuantity(userID, cartItemID string, quantity int) error {
	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return ErrNotFound
	}

	if quantity <= 0 {
		return s.cartRepo.Delete(cartItemID)
	}
	return s.cartRepo.UpdateQuantity(cartItemID, quantity)
}

// Remove deletes a cart line after the ownership check.
func (s *CartService) Remove(userID, cartItemID string) error {
	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return ErrNotFound
	}
	return s.cartRepo.Delete(cartItemID)
}
