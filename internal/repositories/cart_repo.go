package repositories

import (
	"salonstore/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetItemsForUser returns the user's cart lines joined with the current
	// product price, discount and stock, ordered by product ID.
	GetItemsForUser(userID string) ([]models.CartLineWithProduct, error)
	// AddItem inserts a cart line, or increments the quantity when the user
	// already has the product in their cart.
	AddItem(userID, productID string, quantity int) error
	UpdateQuantity(userID, productID string, quantity int) error
	RemoveItem(userID, productID string) error
	Clear(userID string) error
}
