package models

import "time"

// Tier classifies a customer for discount selection.
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// User represents a customer (or staff member) of the store.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash after registration
	Tier     Tier   `json:"tier" gorm:"type:varchar(10);not null;default:'Bronze'" validate:"omitempty,oneof=Bronze Silver Gold"`

	// New accounts stay inactive until the verification link is followed.
	IsActive bool `json:"is_active" gorm:"not null;default:false"`
	IsStaff  bool `json:"is_staff" gorm:"not null;default:false"`

	// Single-use token mailed out at registration; cleared on verification.
	VerificationToken string `json:"-" gorm:"type:varchar(36)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
