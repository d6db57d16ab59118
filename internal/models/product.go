package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Description string    `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Price       float64   `json:"price" validate:"gte=0"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36);index" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Department  string    `json:"department" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
