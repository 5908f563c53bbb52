package repositories

import (
	"errors"
	"fmt"

	"paletteandfit/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate username surfaces as gorm.ErrDuplicatedKey.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// UpdateProfile overwrites every profile column; nil values are stored as NULL.
func (r *GORMUserRepository) UpdateProfile(username string, p models.Profile) error {
	return r.updateColumns(username, map[string]interface{}{
		"name":        p.Name,
		"age":         p.Age,
		"gender":      p.Gender,
		"skin_tone":   p.SkinTone,
		"weight":      p.Weight,
		"body_length": p.BodyLength,
		"upper_width": p.UpperWidth,
		"lower_width": p.LowerWidth,
		"phone":       p.Phone,
	})
}

// UpdateBody overwrites the four body measurement columns.
func (r *GORMUserRepository) UpdateBody(username string, b models.BodyMeasurements) error {
	return r.updateColumns(username, map[string]interface{}{
		"weight":      b.Weight,
		"body_length": b.BodyLength,
		"upper_width": b.UpperWidth,
		"lower_width": b.LowerWidth,
	})
}

// SaveRecommendation stores the raw stylist reply and its extracted fields.
func (r *GORMUserRepository) SaveRecommendation(username, raw string, a models.StyleAnalysis) error {
	return r.updateColumns(username, map[string]interface{}{
		"last_recommendation":   raw,
		"best_color":            a.BestColor,
		"worst_color":           a.WorstColor,
		"light_tones_percent":   a.LightTonesPercent,
		"dark_tones_percent":    a.DarkTonesPercent,
		"western_percent":       a.WesternPercent,
		"eastern_percent":       a.EasternPercent,
		"personalized_analysis": a.PersonalizedAnalysis,
	})
}

func (r *GORMUserRepository) updateColumns(username string, columns map[string]interface{}) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).Updates(columns)
	if res.Error != nil {
		return fmt.Errorf("failed to update user %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with username %s: %w", username, ErrNotFound)
	}
	return nil
}

// List returns every user, newest first.
func (r *GORMUserRepository) List() ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id, name, username, gender, age, skin_tone, created_at").
		Order("created_at DESC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user row. Deleting a missing user is not an error.
func (r *GORMUserRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
