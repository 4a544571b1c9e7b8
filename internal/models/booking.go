package models

import "time"

// Booking has no end_time column. The effective end is always derived from
// the duration of the currently linked service, so editing a service's
// duration shifts the effective end of its existing bookings.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	StylistID uint    `gorm:"index:idx_booking_stylist_start" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	ServiceItemID uint        `json:"service_item_id"`
	ServiceItem   ServiceItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_item"`

	StartTime time.Time `gorm:"index:idx_booking_stylist_start" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	// snapshot of the customer at creation time; survives identity edits
	ClientName  string `gorm:"size:255" json:"client_name"`
	ClientEmail string `gorm:"size:255" json:"client_email"`
	ClientPhone string `gorm:"size:50" json:"client_phone"`

	// set and cleared only by the calendar sync path
	CalendarEventID *string `gorm:"size:255" json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EndTime derives the booking end from the given service's duration.
func (b *Booking) EndTime(svc *ServiceItem) time.Time {
	return b.StartTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)
}
