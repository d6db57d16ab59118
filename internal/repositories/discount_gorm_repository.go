package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{db: db}
}

// GetByCategoryAndTier returns the first matching discount row.
func (r *GORMDiscountRepository) GetByCategoryAndTier(categoryID string, tier models.Tier) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.First(&discount, "category_id = ? AND tier = ?", categoryID, tier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get discount for category %s tier %s: %w", categoryID, tier, err)
	}
	return &discount, nil
}
