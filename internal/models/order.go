package models

import (
	"encoding/json"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is the state of an order's payment. Payment fields are
// metadata only; no gateway is called in this version.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Address is the structured shipping address attached to an order. It is
// serialized to JSON in the order's shipping_address column.
type Address struct {
	Line1      string `json:"line1" validate:"required,max=255"`
	Line2      string `json:"line2,omitempty" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// OrderItem is an immutable snapshot of a cart line at order-creation time.
// UnitPrice is the per-unit price after discount; LineTotal is the discounted
// total for the whole line, both in minor currency units.
type OrderItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"index;type:varchar(36)"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`

	// Display names joined in on reads, never persisted here.
	ProductName string `json:"product_name,omitempty" gorm:"->;-:migration"`
	SalonName   string `json:"salon_name,omitempty" gorm:"->;-:migration"`
}

// Order represents a customer order created from a cart.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string        `json:"user_id" gorm:"index;type:varchar(36)"`
	TotalAmount   int64         `json:"total_amount"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20)"`
	PaymentMethod string        `json:"payment_method" gorm:"type:varchar(40)"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20)"`

	// RawShippingAddress is the stored JSON form; ShippingAddress is the
	// decoded value exposed to clients (see DecodeShippingAddress).
	RawShippingAddress string      `json:"-" gorm:"column:shipping_address;type:text"`
	ShippingAddress    interface{} `json:"shipping_address" gorm:"-"`

	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// DecodeShippingAddress populates ShippingAddress from the stored column.
// A malformed stored value is exposed as the raw string rather than failing
// the whole read.
func (o *Order) DecodeShippingAddress() {
	if o.RawShippingAddress == "" {
		return
	}
	var addr Address
	if err := json.Unmarshal([]byte(o.RawShippingAddress), &addr); err != nil {
		o.ShippingAddress = o.RawShippingAddress
		return
	}
	o.ShippingAddress = addr
}

// Pagination summarizes one page of a paginated listing.
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}
