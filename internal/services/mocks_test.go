package services_test

import (
	"context"

	"paletteandfit/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(username string, profile models.Profile) error {
	return m.Called(username, profile).Error(0)
}

func (m *MockUserRepository) UpdateBody(username string, body models.BodyMeasurements) error {
	return m.Called(username, body).Error(0)
}

func (m *MockUserRepository) SaveRecommendation(username, raw string, analysis models.StyleAnalysis) error {
	return m.Called(username, raw, analysis).Error(0)
}

func (m *MockUserRepository) List() ([]models.UserSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

// MockChatLogRepository is a mock implementation of repositories.ChatLogRepository
type MockChatLogRepository struct {
	mock.Mock
}

func (m *MockChatLogRepository) Create(log *models.ChatbotLog) error {
	return m.Called(log).Error(0)
}

func (m *MockChatLogRepository) Recent(limit int) ([]models.ChatbotLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatbotLog), args.Error(1)
}

// MockContactRepository is a mock implementation of repositories.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(msg *models.ContactMessage) error {
	return m.Called(msg).Error(0)
}

// MockAnalyticsRepository is a mock implementation of repositories.AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) TotalUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) WishlistByGender() ([]models.LabelCount, error) {
	res := m.Called()
	if res.Get(0) == nil {
		return nil, res.Error(1)
	}
	return res.Get(0).([]models.LabelCount), res.Error(1)
}

func (m *MockAnalyticsRepository) MostWishlisted(limit int) ([]models.LabelCount, error) {
	res := m.Called(limit)
	if res.Get(0) == nil {
		return nil, res.Error(1)
	}
	return res.Get(0).([]models.LabelCount), res.Error(1)
}

func (m *MockAnalyticsRepository) SkinTones() ([]models.LabelCount, error) {
	res := m.Called()
	if res.Get(0) == nil {
		return nil, res.Error(1)
	}
	return res.Get(0).([]models.LabelCount), res.Error(1)
}

func (m *MockAnalyticsRepository) AgeGroups() ([]models.LabelCount, error) {
	res := m.Called()
	if res.Get(0) == nil {
		return nil, res.Error(1)
	}
	return res.Get(0).([]models.LabelCount), res.Error(1)
}

func (m *MockAnalyticsRepository) RecentWishlist(limit int) ([]models.RecentWishlist, error) {
	res := m.Called(limit)
	if res.Get(0) == nil {
		return nil, res.Error(1)
	}
	return res.Get(0).([]models.RecentWishlist), res.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, payload interface{}) error {
	return m.Called(routingKey, payload).Error(0)
}

// MockMailer is a mock implementation of services.ContactMailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContact(ctx context.Context, senderEmail, message string) error {
	return m.Called(senderEmail, message).Error(0)
}
