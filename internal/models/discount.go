package models

// Discount maps a (category, customer tier) pair to a percentage off.
// More than one row per pair is tolerated; lookups take the first match.
type Discount struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CategoryID string  `json:"category_id" gorm:"type:varchar(36);index:idx_discounts_category_tier" validate:"required"`
	Tier       Tier    `json:"tier" gorm:"type:varchar(10);index:idx_discounts_category_tier" validate:"required,oneof=Bronze Silver Gold"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}
