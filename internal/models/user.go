package models

import "time"

// User is a registered shopper. Username doubles as the account email.
// The recommendation columns cache the most recent stylist reply.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"type:varchar(16);not null;default:user"`
	CreatedAt time.Time `json:"created_at"`

	Phone      *string  `json:"phone"`
	Name       *string  `json:"name"`
	Age        *int     `json:"age"`
	Gender     *string  `json:"gender"`
	SkinTone   *string  `json:"skin_tone"`
	Weight     *float64 `json:"weight"`
	BodyLength *float64 `json:"body_length"`
	UpperWidth *float64 `json:"upper_width"`
	LowerWidth *float64 `json:"lower_width"`

	LastRecommendation   *string `json:"last_recommendation" gorm:"type:text"`
	BestColor            *string `json:"best_color"`
	WorstColor           *string `json:"worst_color"`
	LightTonesPercent    *int    `json:"light_tones_percent"`
	DarkTonesPercent     *int    `json:"dark_tones_percent"`
	WesternPercent       *int    `json:"western_percent"`
	EasternPercent       *int    `json:"eastern_percent"`
	PersonalizedAnalysis *string `json:"personalized_analysis" gorm:"type:text"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the caller-editable part of a user row.
type Profile struct {
	Phone      *string  `json:"phone"`
	Name       *string  `json:"name"`
	Age        *int     `json:"age"`
	Gender     *string  `json:"gender"`
	SkinTone   *string  `json:"skin_tone"`
	Weight     *float64 `json:"weight"`
	BodyLength *float64 `json:"body_length"`
	UpperWidth *float64 `json:"upper_width"`
	LowerWidth *float64 `json:"lower_width"`
}

// BodyMeasurements is the subset of Profile written by the body form.
type BodyMeasurements struct {
	Weight     *float64 `json:"weight"`
	BodyLength *float64 `json:"body_length"`
	UpperWidth *float64 `json:"upper_width"`
	LowerWidth *float64 `json:"lower_width"`
}
