package services_test

import (
	"testing"

	"salonstore/internal/models"
	"salonstore/internal/repositories"
	"salonstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateFromCart(userID string, params repositories.CreateOrderParams) (*models.Order, error) {
	args := m.Called(userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string, page, limit int) ([]models.Order, *models.Pagination, error) {
	args := m.Called(userID, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(*models.Pagination), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	params := repositories.CreateOrderParams{
		Address:       models.Address{Line1: "12 Orchid Lane", City: "Bandung", PostalCode: "40115"},
		PaymentMethod: "bank_transfer",
	}
	expected := &models.Order{
		ID:          "order-1",
		UserID:      "user-1",
		TotalAmount: 2700,
		Status:      models.OrderStatusPending,
	}

	mockRepo.On("CreateFromCart", "user-1", params).Return(expected, nil).Once()

	order, err := service.CreateOrder("user-1", params)

	assert.NoError(t, err)
	assert.Equal(t, expected, order)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InvalidStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	_, err := service.CreateOrder("user-1", repositories.CreateOrderParams{
		Status: models.OrderStatus("teleported"),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")

	_, err = service.CreateOrder("user-1", repositories.CreateOrderParams{
		PaymentStatus: models.PaymentStatus("iou"),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")

	// The repository must never be touched on invalid input.
	mockRepo.AssertNotCalled(t, "CreateFromCart", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_RepoErrorsPropagate(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("CreateFromCart", "user-1", mock.Anything).Return(nil, models.ErrEmptyCart).Once()

	order, err := service.CreateOrder("user-1", repositories.CreateOrderParams{})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expectedOrders := []models.Order{{ID: "order-1"}, {ID: "order-2"}}
	expectedPagination := &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2, ItemsPerPage: 10}

	mockRepo.On("GetByUser", "user-1", 1, 10).Return(expectedOrders, expectedPagination, nil).Once()

	orders, pagination, err := service.GetOrdersByUser("user-1", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, expectedOrders, orders)
	assert.Equal(t, expectedPagination, pagination)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// Invalid status is rejected before the repository is called.
	err := service.UpdateOrderStatus("order-1", models.OrderStatus("lost"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)

	mockRepo.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()
	err = service.UpdateOrderStatus("order-1", models.OrderStatusShipped)
	assert.NoError(t, err)

	mockRepo.On("UpdateStatus", "order-99", models.OrderStatusShipped).Return(models.ErrOrderNotFound).Once()
	err = service.UpdateOrderStatus("order-99", models.OrderStatusShipped)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	err := service.UpdatePaymentStatus("order-1", models.PaymentStatus("barter"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")

	mockRepo.On("UpdatePaymentStatus", "order-1", models.PaymentStatusCompleted).Return(nil).Once()
	err = service.UpdatePaymentStatus("order-1", models.PaymentStatusCompleted)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
