package repositories

import (
	"fmt"

	"paletteandfit/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// Add inserts the (user, product) pair. It reports false when the pair was
// already present; the unique index resolves concurrent adds.
func (r *GORMWishlistRepository) Add(userEmail string, productID uint) (bool, error) {
	entry := models.WishlistEntry{UserEmail: userEmail, ProductID: productID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if res.Error != nil {
		return false, fmt.Errorf("failed to add product %d to wishlist of %s: %w", productID, userEmail, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes the pair. Removing a pair that is not stored is a no-op.
func (r *GORMWishlistRepository) Remove(userEmail string, productID uint) error {
	err := r.db.Where("user_email = ? AND product_id = ?", userEmail, productID).
		Delete(&models.WishlistEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove product %d from wishlist of %s: %w", productID, userEmail, err)
	}
	return nil
}

// ListProducts returns the full product rows wishlisted by a user.
func (r *GORMWishlistRepository) ListProducts(userEmail string) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Model(&models.Product{}).
		Select("products.*").
		Joins("JOIN wishlist w ON w.product_id = products.id").
		Where("w.user_email = ?", userEmail).
		Order("w.id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist of %s: %w", userEmail, err)
	}
	return products, nil
}
