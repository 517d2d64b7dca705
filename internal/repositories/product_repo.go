package repositories

import (
	"salonstore/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(salonID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock subtracts quantity from the product's stock only when
	// enough stock remains, returning models.ErrInventoryRace otherwise.
	DecrementStock(id string, quantity int) error
}
