package services_test

import (
	"fmt"
	"strings"
	"testing"

	"paletteandfit/internal/models"
	"paletteandfit/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category, gender string) ([]models.Product, error) {
	args := m.Called(category, gender)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func seedCatalog(t *testing.T, service *services.ProductService) {
	t.Helper()
	for _, p := range []models.Product{
		{Title: strPtr("Lawn Kurta"), Gender: strPtr("female"), Category: strPtr("eastern")},
		{Title: strPtr("Denim Jacket"), Gender: strPtr("male"), Category: strPtr("western")},
		{Title: strPtr("Shalwar Kameez"), Gender: strPtr("male"), Category: strPtr("eastern")},
	} {
		p := p
		require.NoError(t, service.CreateProduct(&p))
	}
}

func TestProductService_Catalog(t *testing.T) {
	service := services.NewProductService(NewMemoryProductRepository())
	seedCatalog(t, service)

	all, err := service.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, "Lawn Kurta", *all[0].Title)

	eastern, err := service.GetProductsByCategory("eastern", "")
	require.NoError(t, err)
	assert.Len(t, eastern, 2)

	menEastern, err := service.GetProductsByCategory("eastern", "male")
	require.NoError(t, err)
	require.Len(t, menEastern, 1)
	assert.Equal(t, "Shalwar Kameez", *menEastern[0].Title)

	none, err := service.GetProductsByCategory("formal", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProductService_GetProductByID(t *testing.T) {
	service := services.NewProductService(NewMemoryProductRepository())
	seedCatalog(t, service)

	product, err := service.GetProductByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Denim Jacket", *product.Title)

	product, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, product)
}

func TestProductService_UpdateProduct(t *testing.T) {
	service := services.NewProductService(NewMemoryProductRepository())
	seedCatalog(t, service)

	updated := &models.Product{ID: 1, Title: strPtr("Embroidered Kurta"), ImageURL: strPtr("/uploads/k.png")}
	require.NoError(t, service.UpdateProduct(updated))

	product, err := service.GetProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Embroidered Kurta", *product.Title)
	assert.Nil(t, product.Category, "update overwrites every column")

	err = service.UpdateProduct(&models.Product{ID: 99, Title: strPtr("Ghost")})
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	service := services.NewProductService(NewMemoryProductRepository())
	seedCatalog(t, service)

	require.NoError(t, service.DeleteProduct(1))
	_, err := service.GetProductByID(1)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	assert.ErrorIs(t, service.DeleteProduct(1), services.ErrProductNotFound)
}

func TestProductService_StoreFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Title: strPtr("New Product")}
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err := service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.On("Delete", uint(3)).Return(fmt.Errorf("connection reset")).Once()
	err = service.DeleteProduct(3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAllowedImage(t *testing.T) {
	for name, want := range map[string]bool{
		"photo.png":        true,
		"photo.JPG":        true,
		"archive.tar.jpeg": true,
		"anim.gif":         true,
		"doc.pdf":          false,
		"png":              false,
		"noext.":           false,
	} {
		assert.Equal(t, want, services.AllowedImage(name), name)
	}
}

func TestUploadName(t *testing.T) {
	name := services.UploadName("../../etc/My Photo!.png")
	assert.True(t, strings.HasSuffix(name, "_My_Photo.png"), name)
	assert.NotContains(t, name, "/")
	assert.NotEqual(t, name, services.UploadName("../../etc/My Photo!.png"))

	assert.True(t, strings.HasSuffix(services.UploadName("..."), "_upload"))
	assert.Equal(t, "/uploads/a.png", services.ImageURL("a.png"))
}
