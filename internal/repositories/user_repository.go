package repositories

import "paletteandfit/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(username string, profile models.Profile) error
	UpdateBody(username string, body models.BodyMeasurements) error
	SaveRecommendation(username, raw string, analysis models.StyleAnalysis) error
	List() ([]models.UserSummary, error)
	Delete(id uint) error
}
