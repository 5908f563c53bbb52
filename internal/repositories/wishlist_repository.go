package repositories

import "paletteandfit/internal/models"

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	Add(userEmail string, productID uint) (bool, error)
	Remove(userEmail string, productID uint) error
	ListProducts(userEmail string) ([]models.Product, error)
}
