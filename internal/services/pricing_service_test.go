package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPricingService_DiscountFor(t *testing.T) {
	discountRepo := repositories.NewMockDiscountRepository()
	discountRepo.Add(models.Discount{ID: "d-1", CategoryID: "cat-1", Tier: models.TierGold, Percentage: 15})

	pricing := services.NewPricingService(discountRepo)

	assert.Equal(t, 15.0, pricing.DiscountFor("cat-1", models.TierGold))

	// No row for the pair means full price.
	assert.Equal(t, 0.0, pricing.DiscountFor("cat-1", models.TierBronze))
	assert.Equal(t, 0.0, pricing.DiscountFor("cat-2", models.TierGold))
}

func TestPricingService_LineTotal(t *testing.T) {
	pricing := services.NewPricingService(repositories.NewMockDiscountRepository())

	// Plain multiplication.
	assert.Equal(t, 20.0, pricing.LineTotal(10.0, 2, 0))

	// 19.99 * 3 would drift with naive float math.
	assert.Equal(t, 59.97, pricing.LineTotal(19.99, 3, 0))

	// 10% off 100.
	assert.Equal(t, 90.0, pricing.LineTotal(50.0, 2, 10))

	// Rounded to cents: 33.33 * 1 with 50% off.
	assert.Equal(t, 16.67, pricing.LineTotal(33.33, 1, 50))

	// 100% off is free, never negative.
	assert.Equal(t, 0.0, pricing.LineTotal(25.0, 4, 100))
}

func TestPricingService_Sum(t *testing.T) {
	pricing := services.NewPricingService(repositories.NewMockDiscountRepository())

	// 0.1 + 0.2 style inputs must not produce 0.30000000000000004.
	assert.Equal(t, 0.3, pricing.Sum([]float64{0.1, 0.2}))
	assert.Equal(t, 25.0, pricing.Sum([]float64{20.0, 5.0}))
	assert.Equal(t, 0.0, pricing.Sum(nil))
}
