package services

import (
	"fmt"

	"salonstore/internal/models"
	"salonstore/internal/repositories"
)

// CartService handles business logic for the shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart with a running subtotal of discounted line
// totals.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	lines, err := s.cartRepo.GetItemsForUser(userID)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal()
	}
	return &models.Cart{
		UserID:   userID,
		Items:    lines,
		Subtotal: subtotal,
	}, nil
}

// AddItem puts quantity units of a product into the user's cart. The stock
// check here is advisory, for an early error message; the order transaction
// re-validates stock at checkout.
func (s *CartService) AddItem(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if quantity > product.Stock {
		return &models.InsufficientInventoryError{
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   quantity,
		}
	}

	return s.cartRepo.AddItem(userID, productID, quantity)
}

// UpdateQuantity sets the quantity of an existing cart line.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return s.cartRepo.UpdateQuantity(userID, productID, quantity)
}

// RemoveItem deletes one product from the user's cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	return s.cartRepo.RemoveItem(userID, productID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.Clear(userID)
}
