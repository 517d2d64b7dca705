package models

import (
	"errors"
	"fmt"
)

// Business errors surfaced by repositories and services. Handlers map these
// to HTTP status codes with errors.Is / errors.As.
var (
	// ErrEmptyCart is returned when an order is placed from an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInventoryRace is returned when a guarded stock decrement affects no
	// rows because a concurrent order consumed the stock after validation.
	ErrInventoryRace = errors.New("product stock changed while placing the order, please retry")

	// ErrOrderNotFound is returned by order reads and status updates that
	// match no order row.
	ErrOrderNotFound = errors.New("order not found")

	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound is returned when a cart mutation matches no line.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrBookingNotFound is returned by booking reads and updates that match
	// no booking row.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotTaken is returned when a staff member already has a booking
	// overlapping the requested time window.
	ErrSlotTaken = errors.New("staff member is already booked for this time slot")
)

// InsufficientInventoryError reports a cart line whose requested quantity
// exceeds the product's available stock at order-creation time.
type InsufficientInventoryError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)",
		e.ProductName, e.Requested, e.Available)
}
