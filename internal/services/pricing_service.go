package services

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/shopspring/decimal"
)

// PricingService resolves (category, tier) discounts and does the money
// math for cart and order totals. Arithmetic runs on decimals so repeated
// float multiplication cannot drift a total by a cent.
type PricingService struct {
	discountRepo repositories.DiscountRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(discountRepo repositories.DiscountRepository) *PricingService {
	return &PricingService{discountRepo: discountRepo}
}

// DiscountFor returns the discount percentage for a product category and
// customer tier, or 0 when no discount row exists.
func (s *PricingService) DiscountFor(categoryID string, tier models.Tier) float64 {
	discount, err := s.discountRepo.GetByCategoryAndTier(categoryID, tier)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			// A lookup failure must not block checkout; charge full price.
			log.Printf("discount lookup failed for category %s tier %s: %v", categoryID, tier, err)
		}
		return 0
	}
	return discount.Percentage
}

// LineTotal computes price * quantity with discountPct percent off,
// rounded to 2 decimal places.
func (s *PricingService) LineTotal(price float64, quantity int, discountPct float64) float64 {
	line := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	if discountPct > 0 {
		factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(discountPct)).Div(decimal.NewFromInt(100))
		line = line.Mul(factor)
	}
	total, _ := line.Round(2).Float64()
	return total
}

// Sum adds amounts that are already rounded to cents.
func (s *PricingService) Sum(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Round(2).Float64()
	return f
}
