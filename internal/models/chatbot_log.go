package models

import "time"

// ChatbotLog records one stylist question and the raw reply. Rows are never updated.
type ChatbotLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserEmail   string    `json:"user_email" gorm:"type:varchar(255);index"`
	Question    string    `json:"question" gorm:"type:text"`
	BotResponse string    `json:"bot_response" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
