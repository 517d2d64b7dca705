package services

import (
	"encoding/json"
	"fmt"
	"log"

	"salonstore/internal/models"
	"salonstore/internal/repositories"
	"salonstore/pkg/rabbitmq"
)

// OrderService handles business logic related to orders. The repository owns
// the transactional checkout sequence; this layer validates caller input,
// and publishes lifecycle events after the transaction has committed.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // nil disables event publishing
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder converts the user's cart into an order. Failures from the
// transaction (empty cart, insufficient stock, inventory race) propagate
// unchanged so the handler can map them to status codes. No retry happens
// here; retrying after an inventory race is the caller's decision.
func (s *OrderService) CreateOrder(userID string, params repositories.CreateOrderParams) (*models.Order, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, fmt.Errorf("invalid order status: %s", params.Status)
	}
	if params.PaymentStatus != "" && !params.PaymentStatus.Valid() {
		return nil, fmt.Errorf("invalid payment status: %s", params.PaymentStatus)
	}

	order, err := s.orderRepo.CreateFromCart(userID, params)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUser retrieves one page of the user's orders.
func (s *OrderService) GetOrdersByUser(userID string, page, limit int) ([]models.Order, *models.Pagination, error) {
	return s.orderRepo.GetByUser(userID, page, limit)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

// UpdatePaymentStatus updates the payment status of an existing order.
func (s *OrderService) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid payment status: %s", status)
	}
	return s.orderRepo.UpdatePaymentStatus(id, status)
}

// publishEvent sends a best-effort event to RabbitMQ. Publishing failures
// are logged, never propagated; the order state is already durable.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
