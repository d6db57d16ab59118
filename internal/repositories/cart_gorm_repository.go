package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetByUser retrieves all cart lines for a user.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Order("created_at asc").Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByUserForUpdate retrieves the user's cart lines under SELECT ... FOR
// UPDATE. Outside a transaction this degrades to a plain read; SQLite
// ignores the clause but its single-writer transactions give the same
// serialization.
func (r *GORMCartRepository) GetByUserForUpdate(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("created_at asc").
		Find(&items, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByID retrieves a single cart line by its ID.
func (r *GORMCartRepository) GetByID(id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", id, err)
	}
	return &item, nil
}

// GetByUserAndProduct retrieves the user's cart line for a product, if any.
func (r *GORMCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart item for user %s product %s: %w", userID, productID, err)
	}
	return &item, nil
}

// Create inserts a new cart line.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing cart line.
func (r *GORMCartRepository) UpdateQuantity(id string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a single cart line.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUser removes every cart line belonging to a user. Deleting an
// already-empty cart is not an error.
func (r *GORMCartRepository) DeleteByUser(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
