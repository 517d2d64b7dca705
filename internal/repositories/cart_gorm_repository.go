package repositories

import (
	"errors"
	"fmt"

	"salonstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetItemsForUser returns the user's cart lines joined with product data,
// ordered by product ID so downstream processing is deterministic.
func (r *GORMCartRepository) GetItemsForUser(userID string) ([]models.CartLineWithProduct, error) {
	lines := []models.CartLineWithProduct{}
	err := r.db.Table("cart_items").
		Select("cart_items.product_id, products.name AS product_name, cart_items.quantity, "+
			"products.price AS unit_price, products.discount_percent, products.stock").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.product_id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items for user %s: %w", userID, err)
	}
	return lines, nil
}

// AddItem inserts a cart line or increments an existing one for the same
// product. The read and write run in one transaction so two quick adds from
// the same user cannot clash on the unique (user, product) index.
func (r *GORMCartRepository) AddItem(userID, productID string, quantity int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.First(&existing, "user_id = ? AND product_id = ?", userID, productID).Error
		if err == nil {
			res := tx.Model(&models.CartItem{}).
				Where("id = ?", existing.ID).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to increment cart quantity: %w", res.Error)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up cart item: %w", err)
		}

		item := models.CartItem{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}
		return nil
	})
}

// UpdateQuantity sets the quantity of an existing cart line.
func (r *GORMCartRepository) UpdateQuantity(userID, productID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		UpdateColumn("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line for product %s: %w", productID, models.ErrCartItemNotFound)
	}
	return nil
}

// RemoveItem deletes one cart line.
func (r *GORMCartRepository) RemoveItem(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line for product %s: %w", productID, models.ErrCartItemNotFound)
	}
	return nil
}

// Clear deletes all cart lines for the user. Clearing an already empty cart
// is not an error.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
