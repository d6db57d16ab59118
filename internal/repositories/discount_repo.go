package repositories

import "storefront/internal/models"

// DiscountRepository defines the interface for discount lookups.
// The table is read-only from the application's point of view; rows are
// maintained by staff directly in the database.
type DiscountRepository interface {
	// GetByCategoryAndTier returns the first discount row for the pair,
	// or ErrNotFound when the pair has no discount.
	GetByCategoryAndTier(categoryID string, tier models.Tier) (*models.Discount, error)
}
