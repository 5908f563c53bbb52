package repositories

import (
	"fmt"

	"paletteandfit/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the fixed read-only aggregates behind the admin dashboard.
type AnalyticsRepository interface {
	TotalUsers() (int64, error)
	WishlistByGender() ([]models.LabelCount, error)
	MostWishlisted(limit int) ([]models.LabelCount, error)
	SkinTones() ([]models.LabelCount, error)
	AgeGroups() ([]models.LabelCount, error)
	RecentWishlist(limit int) ([]models.RecentWishlist, error)
}

// GORMAnalyticsRepository is a GORM implementation of AnalyticsRepository.
type GORMAnalyticsRepository struct {
	db *gorm.DB
}

// NewGORMAnalyticsRepository creates a new instance of GORMAnalyticsRepository.
func NewGORMAnalyticsRepository(db *gorm.DB) *GORMAnalyticsRepository {
	return &GORMAnalyticsRepository{db: db}
}

func (r *GORMAnalyticsRepository) TotalUsers() (int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *GORMAnalyticsRepository) WishlistByGender() ([]models.LabelCount, error) {
	return r.labelCounts("wishlist by gender", `
		SELECT u.gender AS label, COUNT(*) AS count
		FROM wishlist w
		JOIN users u ON w.user_email = u.username
		GROUP BY u.gender`)
}

func (r *GORMAnalyticsRepository) MostWishlisted(limit int) ([]models.LabelCount, error) {
	return r.labelCounts("most wishlisted", `
		SELECT p.title AS label, COUNT(*) AS count
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		GROUP BY p.title
		ORDER BY COUNT(*) DESC
		LIMIT ?`, limit)
}

func (r *GORMAnalyticsRepository) SkinTones() ([]models.LabelCount, error) {
	return r.labelCounts("skin tones", `
		SELECT skin_tone AS label, COUNT(*) AS count
		FROM users
		GROUP BY skin_tone`)
}

// AgeGroups buckets users into fixed age ranges; NULL ages fall into 50+.
func (r *GORMAnalyticsRepository) AgeGroups() ([]models.LabelCount, error) {
	return r.labelCounts("age groups", `
		SELECT
			CASE
				WHEN age BETWEEN 13 AND 18 THEN '13-18'
				WHEN age BETWEEN 19 AND 25 THEN '19-25'
				WHEN age BETWEEN 26 AND 35 THEN '26-35'
				WHEN age BETWEEN 36 AND 50 THEN '36-50'
				ELSE '50+'
			END AS label,
			COUNT(*) AS count
		FROM users
		GROUP BY label
		ORDER BY label`)
}

func (r *GORMAnalyticsRepository) RecentWishlist(limit int) ([]models.RecentWishlist, error) {
	rows := []models.RecentWishlist{}
	err := r.db.Raw(`
		SELECT w.user_email, p.title
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		ORDER BY w.id DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent wishlist: %w", err)
	}
	return rows, nil
}

func (r *GORMAnalyticsRepository) labelCounts(name, query string, args ...interface{}) ([]models.LabelCount, error) {
	rows := []models.LabelCount{}
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return rows, nil
}
