package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/LumiereBeauty/salon-scheduler/internal/calendar"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/events"
	"github.com/LumiereBeauty/salon-scheduler/internal/linksign"
	"github.com/LumiereBeauty/salon-scheduler/internal/notify"
)

// Handlers consume the booking events. Delivery is at-least-once: a
// re-delivered task re-sends an email, which is tolerated; booking state is
// only touched to attach a calendar event id.
type Handlers struct {
	repo   domain.Repository
	mailer notify.Mailer
	cal    calendar.Calendar
	signer *linksign.Signer
	logger *zap.Logger

	adminEmail string
	baseURL    string
	fromName   string
}

func NewHandlers(
	repo domain.Repository,
	mailer notify.Mailer,
	cal calendar.Calendar,
	signer *linksign.Signer,
	logger *zap.Logger,
	adminEmail string,
	baseURL string,
	fromName string,
) *Handlers {
	return &Handlers{
		repo:       repo,
		mailer:     mailer,
		cal:        cal,
		signer:     signer,
		logger:     logger,
		adminEmail: adminEmail,
		baseURL:    baseURL,
		fromName:   fromName,
	}
}

// HandleBookingCreated sends the customer confirmation and, when the
// booking is already confirmed and unsynced, attaches a calendar event.
func (h *Handlers) HandleBookingCreated(ctx context.Context, t *asynq.Task) error {
	var p events.BookingCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		h.logger.Error("invalid booking created payload", zap.Error(err))
		return err
	}

	b, err := h.repo.GetBookingByID(ctx, p.BookingID)
	if err != nil {
		// booking gone; retrying will not help
		h.logger.Error("booking not found for confirmation email",
			zap.Uint("booking_id", p.BookingID))
		return nil
	}

	subject, body := confirmationEmail(b, h.fromName)
	if err := h.mailer.Send(ctx, b.ClientEmail, subject, body); err != nil {
		h.logger.Error("failed to send confirmation email",
			zap.Uint("booking_id", b.ID), zap.Error(err))
		return err
	}

	// Only confirmed bookings are synced; a pending booking gets its event
	// when the admin approves it.
	if domain.Status(b.Status) == domain.StatusConfirmed &&
		b.CalendarEventID == nil && h.cal.IsConfigured() {

		eventID, err := h.cal.CreateEvent(ctx, b, &b.ServiceItem, &b.Stylist)
		if err != nil {
			h.logger.Error("calendar sync failed",
				zap.Uint("booking_id", b.ID), zap.Error(err))
			return nil
		}
		if eventID != "" {
			b.CalendarEventID = &eventID
			if err := h.repo.SaveBooking(ctx, b); err != nil {
				h.logger.Error("failed to store calendar event id",
					zap.Uint("booking_id", b.ID), zap.Error(err))
			}
		}
	}

	return nil
}

// HandleAdminNotify emails the operator a review request with signed
// one-click approve/reject links.
func (h *Handlers) HandleAdminNotify(ctx context.Context, t *asynq.Task) error {
	var p events.AdminBookingNotifyPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		h.logger.Error("invalid admin notify payload", zap.Error(err))
		return err
	}

	b, err := h.repo.GetBookingByID(ctx, p.BookingID)
	if err != nil {
		h.logger.Error("booking not found for admin notification",
			zap.Uint("booking_id", p.BookingID))
		return nil
	}

	approveToken, err := h.signer.Sign(linksign.ActionApprove, b.ID)
	if err != nil {
		return err
	}
	rejectToken, err := h.signer.Sign(linksign.ActionReject, b.ID)
	if err != nil {
		return err
	}

	approveURL := fmt.Sprintf("%s/booking/%d/approve?token=%s", h.baseURL, b.ID, approveToken)
	rejectURL := fmt.Sprintf("%s/booking/%d/reject?token=%s", h.baseURL, b.ID, rejectToken)

	subject, body := adminActionEmail(b, approveURL, rejectURL)
	if err := h.mailer.Send(ctx, h.adminEmail, subject, body); err != nil {
		h.logger.Error("failed to send admin notification email",
			zap.Uint("booking_id", b.ID), zap.Error(err))
		return err
	}

	return nil
}

// HandleStatusChanged notifies the customer about a status transition.
func (h *Handlers) HandleStatusChanged(ctx context.Context, t *asynq.Task) error {
	var p events.BookingStatusChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		h.logger.Error("invalid status change payload", zap.Error(err))
		return err
	}

	b, err := h.repo.GetBookingByID(ctx, p.BookingID)
	if err != nil {
		h.logger.Error("booking not found for status change email",
			zap.Uint("booking_id", p.BookingID))
		return nil
	}

	subject, body := statusChangeEmail(
		b,
		domain.Status(p.OldStatus),
		domain.Status(p.NewStatus),
		h.fromName,
	)
	if err := h.mailer.Send(ctx, b.ClientEmail, subject, body); err != nil {
		h.logger.Error("failed to send status change email",
			zap.Uint("booking_id", b.ID), zap.Error(err))
		return err
	}

	return nil
}
