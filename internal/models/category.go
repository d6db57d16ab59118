package models

// Category groups products and keys the discount table.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
}
