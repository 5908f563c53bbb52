package services

import (
	"errors"
	"fmt"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
)

// ProfileService reads and overwrites the demographic part of a user row.
type ProfileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

func (s *ProfileService) GetProfile(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

// UpdateProfile replaces every profile field; nil fields are cleared.
func (s *ProfileService) UpdateProfile(username string, profile models.Profile) error {
	return s.mapNotFound(s.userRepo.UpdateProfile(username, profile))
}

// UpdateBody replaces the four body measurements.
func (s *ProfileService) UpdateBody(username string, body models.BodyMeasurements) error {
	return s.mapNotFound(s.userRepo.UpdateBody(username, body))
}

func (s *ProfileService) mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
