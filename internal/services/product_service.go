package services

import (
	"context"
	"log"
	"time"

	"salonstore/internal/models"
	"salonstore/internal/repositories"
	"salonstore/pkg/cache"
)

const productCacheTTL = 5 * time.Minute

// ProductService handles business logic related to products. Reads go
// through a cache-aside Redis layer when a cache client is configured; a nil
// cache disables caching entirely.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *cache.Client
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, cacheClient *cache.Client) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cacheClient,
	}
}

// GetAllProducts retrieves all products, optionally filtered to one salon.
func (s *ProductService) GetAllProducts(salonID string) ([]models.Product, error) {
	return s.repo.GetAll(salonID)
}

// GetProductByID retrieves a single product, preferring the cache. Cache
// failures fall back to the database; they never fail the read.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.cache != nil {
		var cached models.Product
		if err := s.cache.Get(ctx, cache.ProductKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.ProductKey(id), product, productCacheTTL); err != nil {
			log.Printf("Warning: failed to cache product %s: %v", id, err)
		}
	}
	return product, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product and invalidates its cache entry.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.invalidate(product.ID)
	return nil
}

// DeleteProduct deletes a product by its ID and invalidates its cache entry.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *ProductService) invalidate(id string) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, cache.ProductKey(id)); err != nil {
		log.Printf("Warning: failed to invalidate product cache for %s: %v", id, err)
	}
}
