package calendar

import (
	"context"

	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

// Calendar is the best-effort external calendar collaborator. Failures are
// logged by callers and never fail a booking operation.
type Calendar interface {
	IsConfigured() bool

	// CreateEvent returns the external event id, or "" when nothing was
	// created.
	CreateEvent(ctx context.Context, b *models.Booking, svc *models.ServiceItem, stylist *models.Stylist) (string, error)

	DeleteEvent(ctx context.Context, eventID string) error
}

// Disabled is used when no calendar credentials are configured.
type Disabled struct{}

func (Disabled) IsConfigured() bool { return false }

func (Disabled) CreateEvent(context.Context, *models.Booking, *models.ServiceItem, *models.Stylist) (string, error) {
	return "", nil
}

func (Disabled) DeleteEvent(context.Context, string) error { return nil }
