package repositories

import (
	"salonstore/internal/models"
)

// CreateOrderParams carries the caller-supplied metadata for a new order.
// Zero values fall back to pending status/payment defaults.
type CreateOrderParams struct {
	Address       models.Address
	Status        models.OrderStatus
	PaymentMethod string
	PaymentStatus models.PaymentStatus
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateFromCart atomically converts the user's cart into an order:
	// it validates per-line stock, computes discounted line totals, inserts
	// the order and its items, decrements stock with a guarded update, and
	// clears the cart, all in one transaction. On any failure nothing is
	// persisted.
	CreateFromCart(userID string, params CreateOrderParams) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string, page, limit int) ([]models.Order, *models.Pagination, error)
	UpdateStatus(id string, status models.OrderStatus) error
	UpdatePaymentStatus(id string, status models.PaymentStatus) error
}
