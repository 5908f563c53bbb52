package repositories

import (
	"fmt"

	"paletteandfit/internal/models"

	"gorm.io/gorm"
)

// ChatLogRepository stores stylist exchanges.
type ChatLogRepository interface {
	Create(log *models.ChatbotLog) error
	Recent(limit int) ([]models.ChatbotLog, error)
}

// ContactRepository stores inbound support messages.
type ContactRepository interface {
	Create(msg *models.ContactMessage) error
}

type GORMChatLogRepository struct {
	db *gorm.DB
}

func NewGORMChatLogRepository(db *gorm.DB) *GORMChatLogRepository {
	return &GORMChatLogRepository{db: db}
}

func (r *GORMChatLogRepository) Create(log *models.ChatbotLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to save chatbot log: %w", err)
	}
	return nil
}

// Recent returns the newest logs first.
func (r *GORMChatLogRepository) Recent(limit int) ([]models.ChatbotLog, error) {
	logs := []models.ChatbotLog{}
	if err := r.db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get chatbot logs: %w", err)
	}
	return logs, nil
}

type GORMContactRepository struct {
	db *gorm.DB
}

func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{db: db}
}

func (r *GORMContactRepository) Create(msg *models.ContactMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}
