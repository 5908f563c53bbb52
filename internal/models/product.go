package models

// Product represents a catalog entry.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" gorm:"type:text"`
	ImageURL    *string `json:"image_url"`
	Gender      *string `json:"gender" gorm:"index"`
	Category    *string `json:"category" gorm:"index"`
}
