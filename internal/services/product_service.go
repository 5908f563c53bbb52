package services

import (
	"errors"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsByCategory filters by category and, when gender is non-empty, by gender.
func (s *ProductService) GetProductsByCategory(category, gender string) ([]models.Product, error) {
	return s.repo.GetByCategory(category, gender)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	return product, mapProductErr(err)
}

// CreateProduct stores a new product and fills in its ID.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct overwrites all columns of an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return mapProductErr(s.repo.Update(product))
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return mapProductErr(s.repo.Delete(id))
}

func mapProductErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}
