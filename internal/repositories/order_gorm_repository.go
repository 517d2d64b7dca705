package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"salonstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateFromCart converts the user's cart into a persisted order inside one
// database transaction. The initial stock check against the cart read is a
// fast path that produces a precise error message; the guarded decrement is
// the actual enforcement point against concurrent orders. Any returned error
// rolls the whole transaction back, so the only observable outcomes are
// "fully applied" and "fully rejected".
func (r *GORMOrderRepository) CreateFromCart(userID string, params CreateOrderParams) (*models.Order, error) {
	status := params.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	paymentStatus := params.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}
	paymentMethod := params.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "pending"
	}

	rawAddress, err := json.Marshal(params.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize shipping address: %w", err)
	}

	orderID := uuid.New().String()
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLineWithProduct
		if err := tx.Table("cart_items").
			Select("cart_items.product_id, products.name AS product_name, cart_items.quantity, "+
				"products.price AS unit_price, products.discount_percent, products.stock").
			Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
			Where("cart_items.user_id = ?", userID).
			Order("cart_items.product_id").
			Scan(&lines).Error; err != nil {
			return fmt.Errorf("failed to read cart for user %s: %w", userID, err)
		}
		if len(lines) == 0 {
			return models.ErrEmptyCart
		}

		var totalAmount int64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			if line.Quantity > line.Stock {
				return &models.InsufficientInventoryError{
					ProductName: line.ProductName,
					Available:   line.Stock,
					Requested:   line.Quantity,
				}
			}
			lineTotal := line.LineTotal()
			totalAmount += lineTotal
			items = append(items, models.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: models.DiscountedUnitPrice(line.UnitPrice, line.DiscountPercent),
				LineTotal: lineTotal,
			})
		}

		now := time.Now()
		order := models.Order{
			ID:                 orderID,
			UserID:             userID,
			TotalAmount:        totalAmount,
			Status:             status,
			PaymentMethod:      paymentMethod,
			PaymentStatus:      paymentStatus,
			RawShippingAddress: string(rawAddress),
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range items {
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create order item for product %s: %w", item.ProductID, err)
			}
			// Guarded decrement: the WHERE clause re-checks availability
			// atomically with the write. Zero rows affected means a
			// concurrent order consumed the stock after our read.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %s: %w", item.ProductID, models.ErrInventoryRace)
			}
		}

		if err := tx.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
			return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read through the ordinary read path so display names and address
	// decoding are shared with GetByID.
	return r.GetByID(orderID)
}

// GetByID fetches an order with its items joined with product and salon
// display names.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}

	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.DecodeShippingAddress()
	return &order, nil
}

// GetByUser returns one page of the user's orders, newest first, each with
// its items attached, plus a pagination summary.
func (r *GORMOrderRepository) GetByUser(userID string, page, limit int) ([]models.Order, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var totalItems int64
	if err := r.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count orders for user %s: %w", userID, err)
	}

	orders := []models.Order{}
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}

	for i := range orders {
		items, err := r.loadItems(orders[i].ID)
		if err != nil {
			return nil, nil, err
		}
		orders[i].Items = items
		orders[i].DecodeShippingAddress()
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	pagination := &models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1 && totalItems > 0,
	}
	return orders, pagination, nil
}

// UpdateStatus updates the lifecycle status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, models.ErrOrderNotFound)
	}
	return nil
}

// UpdatePaymentStatus updates the payment status of an order.
func (r *GORMOrderRepository) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, models.ErrOrderNotFound)
	}
	return nil
}

func (r *GORMOrderRepository) loadItems(orderID string) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	err := r.db.Table("order_items").
		Select("order_items.*, products.name AS product_name, salons.name AS salon_name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("LEFT JOIN salons ON salons.id = products.salon_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.product_id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items for order %s: %w", orderID, err)
	}
	return items, nil
}
