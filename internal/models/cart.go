package models

import "time"

// CartItem is one cart line: at most one row per (user, product).
// Quantity is always >= 1; dropping to zero deletes the line instead.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_user_product" validate:"required"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_user_product" validate:"required"`
	Quantity  int       `json:"quantity" gorm:"not null" validate:"gte=1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
