package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	// GetByUserForUpdate reads the user's cart lines holding row locks for
	// the rest of the surrounding transaction, so concurrent checkouts of
	// the same cart serialize instead of double-spending it.
	GetByUserForUpdate(userID string) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	DeleteByUser(userID string) error
}
