package services_test

import (
	"fmt"
	"sort"
	"sync"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
)

// MemoryProductRepository is an in-memory implementation of
// repositories.ProductRepository for tests where a database adds nothing.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

var _ repositories.ProductRepository = (*MemoryProductRepository)(nil)

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by ID.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(models.Product) bool { return true }), nil
}

// GetByCategory returns products of a category, optionally narrowed by gender.
func (r *MemoryProductRepository) GetByCategory(category, gender string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p models.Product) bool {
		if p.Category == nil || *p.Category != category {
			return false
		}
		return gender == "" || (p.Gender != nil && *p.Gender == gender)
	}), nil
}

func (r *MemoryProductRepository) filter(keep func(models.Product) bool) []models.Product {
	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, repositories.ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product and assigns the next ID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d not found for update: %w", product.ID, repositories.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d not found for deletion: %w", id, repositories.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
