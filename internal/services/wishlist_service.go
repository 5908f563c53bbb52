package services

import (
	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
)

type WishlistService struct {
	repo repositories.WishlistRepository
}

func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Add is idempotent; adding a product already in the wishlist succeeds.
func (s *WishlistService) Add(username string, productID uint) error {
	_, err := s.repo.Add(username, productID)
	return err
}

// Remove is a no-op when the product is not in the wishlist.
func (s *WishlistService) Remove(username string, productID uint) error {
	return s.repo.Remove(username, productID)
}

func (s *WishlistService) List(username string) ([]models.Product, error) {
	return s.repo.ListProducts(username)
}
