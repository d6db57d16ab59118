package models

import "time"

// OrderStatus is the lifecycle state of an order. Only staff move it.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// OrderItem is a single line within an order. Price is a frozen copy of
// the product price at checkout time, not a live reference.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);not null;index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36);not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}

// Order is an immutable record of a completed checkout; only Status
// changes afterwards. OrderDate is set at creation and never updated.
type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string      `json:"user_id" gorm:"type:varchar(36);not null;index"`
	TotalPrice float64     `json:"total_price" gorm:"not null" validate:"gte=0"`
	OrderDate  time.Time   `json:"order_date" gorm:"not null;index"`
	Status     OrderStatus `json:"status" gorm:"type:varchar(10);not null;default:'Pending'"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
