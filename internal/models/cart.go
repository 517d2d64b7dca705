package models

import "time"

// CartItem represents one pending-purchase line in a user's cart.
// A user has at most one cart line per product; adding the same product again
// increments the quantity instead. Cart lines are hard-deleted (no soft
// delete) so the (user, product) unique index never collides with a cleared
// cart.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLineWithProduct is a cart line joined with the current product row.
// It is the strongly typed shape returned by the cart-with-product read used
// during checkout, so business logic never handles loosely typed rows.
type CartLineWithProduct struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       int64  `json:"unit_price"`
	DiscountPercent int    `json:"discount_percent"`
	Stock           int    `json:"stock"`
}

// LineTotal returns the discounted total for this cart line in minor units.
func (l CartLineWithProduct) LineTotal() int64 {
	return LineTotal(l.UnitPrice, l.DiscountPercent, l.Quantity)
}

// Cart is the view of a user's cart returned to clients.
type Cart struct {
	UserID   string                `json:"user_id"`
	Items    []CartLineWithProduct `json:"items"`
	Subtotal int64                 `json:"subtotal"`
}
