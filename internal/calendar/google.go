package calendar

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

// GoogleCalendar writes appointments to a Google calendar through a service
// account. Service accounts cannot invite attendees on personal calendars,
// so events are created directly with write permission.
type GoogleCalendar struct {
	credentialsPath string
	calendarID      string
	logger          *zap.Logger

	once sync.Once
	svc  *gcal.Service
	err  error
}

func NewGoogleCalendar(credentialsPath, calendarID string, logger *zap.Logger) *GoogleCalendar {
	return &GoogleCalendar{
		credentialsPath: credentialsPath,
		calendarID:      calendarID,
		logger:          logger,
	}
}

func (g *GoogleCalendar) IsConfigured() bool {
	if g.credentialsPath == "" {
		return false
	}
	_, err := os.Stat(g.credentialsPath)
	return err == nil
}

func (g *GoogleCalendar) service(ctx context.Context) (*gcal.Service, error) {
	g.once.Do(func() {
		g.svc, g.err = gcal.NewService(ctx,
			option.WithCredentialsFile(g.credentialsPath),
			option.WithScopes(gcal.CalendarScope),
		)
		if g.err != nil {
			g.logger.Error("failed to initialize google calendar client", zap.Error(g.err))
		}
	})
	return g.svc, g.err
}

func (g *GoogleCalendar) CreateEvent(
	ctx context.Context,
	b *models.Booking,
	svc *models.ServiceItem,
	stylist *models.Stylist,
) (string, error) {

	service, err := g.service(ctx)
	if err != nil {
		return "", err
	}

	end := b.EndTime(svc)

	event := &gcal.Event{
		Summary:     "Hair Appointment: " + svc.Title,
		Description: eventDescription(b, svc, stylist),
		Start: &gcal.EventDateTime{
			DateTime: b.StartTime.Format(time.RFC3339),
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
		},
	}

	created, err := service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	g.logger.Info("google calendar event created",
		zap.Uint("booking_id", b.ID),
		zap.String("event_id", created.Id),
	)
	return created.Id, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	service, err := g.service(ctx)
	if err != nil {
		return err
	}
	return service.Events.Delete(g.calendarID, eventID).Context(ctx).Do()
}

func eventDescription(b *models.Booking, svc *models.ServiceItem, stylist *models.Stylist) string {
	desc := fmt.Sprintf(
		"Client: %s\nEmail: %s\nPhone: %s\nService: %s (%d min)\nStylist: %s",
		b.ClientName, b.ClientEmail, b.ClientPhone,
		svc.Title, svc.DurationMinutes,
		stylist.Name,
	)
	if b.Notes != "" {
		desc += "\nNotes: " + b.Notes
	}
	return desc
}

var _ Calendar = (*GoogleCalendar)(nil)
