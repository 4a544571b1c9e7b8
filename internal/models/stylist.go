package models

import "time"

// Stylist is the exclusive resource being scheduled: one booking at a time.
type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Bio            string `gorm:"size:255" json:"bio"`
	PhotoURL       string `gorm:"size:255" json:"photo_url"`
	Specialization string `gorm:"size:100" json:"specialization"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
