package services_test

import (
	"testing"

	"salonstore/internal/models"
	"salonstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetItemsForUser(userID string) ([]models.CartLineWithProduct, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartLineWithProduct), args.Error(1)
}

func (m *MockCartRepository) AddItem(userID, productID string, quantity int) error {
	args := m.Called(userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(userID, productID string, quantity int) error {
	args := m.Called(userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveItem(userID, productID string) error {
	args := m.Called(userID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(salonID string) ([]models.Product, error) {
	args := m.Called(salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id string, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func TestCartService_GetCart(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	lines := []models.CartLineWithProduct{
		{ProductID: "p1", ProductName: "Argan Oil Shampoo", Quantity: 2, UnitPrice: 500, DiscountPercent: 0, Stock: 10},
		{ProductID: "p2", ProductName: "Keratin Mask", Quantity: 3, UnitPrice: 1000, DiscountPercent: 10, Stock: 5},
	}
	mockCartRepo.On("GetItemsForUser", "user-1").Return(lines, nil).Once()

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	// 2*500 + round(3*1000*0.9) = 1000 + 2700
	assert.Equal(t, int64(3700), cart.Subtotal)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	product := &models.Product{ID: "p1", Name: "Argan Oil Shampoo", Price: 500, Stock: 10}
	mockProductRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockCartRepo.On("AddItem", "user-1", "p1", 2).Return(nil).Once()

	err := service.AddItem("user-1", "p1", 2)
	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	product := &models.Product{ID: "p1", Name: "Argan Oil Shampoo", Price: 500, Stock: 3}
	mockProductRepo.On("GetByID", "p1").Return(product, nil).Once()

	err := service.AddItem("user-1", "p1", 5)
	assert.Error(t, err)

	var insufficient *models.InsufficientInventoryError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Argan Oil Shampoo", insufficient.ProductName)
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)
	mockCartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_AddItem_NonPositiveQuantity(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	err := service.AddItem("user-1", "p1", 0)
	assert.Error(t, err)
	mockProductRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	mockCartRepo.On("UpdateQuantity", "user-1", "p1", 4).Return(nil).Once()
	assert.NoError(t, service.UpdateQuantity("user-1", "p1", 4))

	assert.Error(t, service.UpdateQuantity("user-1", "p1", -1))
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_ClearCart(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewCartService(mockCartRepo, mockProductRepo)

	mockCartRepo.On("Clear", "user-1").Return(nil).Once()
	assert.NoError(t, service.ClearCart("user-1"))
	mockCartRepo.AssertExpectations(t)
}
