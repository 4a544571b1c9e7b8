package models

import "time"

type ServiceItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`

	DurationMinutes int  `gorm:"default:30" json:"duration_minutes"`
	IsActive        bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
