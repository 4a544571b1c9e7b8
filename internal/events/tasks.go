package events

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types carried on the booking queue. Delivery is at-least-once;
// handlers must tolerate re-execution.
const (
	TypeBookingCreated       = "booking:created"
	TypeAdminBookingNotify   = "booking:admin_notify"
	TypeBookingStatusChanged = "booking:status_changed"
)

type BookingCreatedPayload struct {
	BookingID uint `json:"booking_id"`
}

type AdminBookingNotifyPayload struct {
	BookingID uint `json:"booking_id"`
}

type BookingStatusChangedPayload struct {
	BookingID uint   `json:"booking_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

func NewBookingCreatedTask(bookingID uint) (*asynq.Task, error) {
	b, err := json.Marshal(BookingCreatedPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingCreated, b), nil
}

func NewAdminBookingNotifyTask(bookingID uint) (*asynq.Task, error) {
	b, err := json.Marshal(AdminBookingNotifyPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAdminBookingNotify, b), nil
}

func NewBookingStatusChangedTask(bookingID uint, oldStatus, newStatus string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingStatusChangedPayload{
		BookingID: bookingID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingStatusChanged, b), nil
}
