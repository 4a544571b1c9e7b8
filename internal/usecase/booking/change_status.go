package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/LumiereBeauty/salon-scheduler/internal/cache"
	"github.com/LumiereBeauty/salon-scheduler/internal/calendar"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/events"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

type ChangeStatusResult struct {
	Booking *models.Booking
	// AlreadyProcessed is true when the booking was already in the target
	// status; nothing was persisted and no event was emitted.
	AlreadyProcessed bool
}

type ChangeStatus struct {
	repo      domain.Repository
	cal       calendar.Calendar
	publisher events.Publisher
	slots     *cache.SlotCache
	logger    *zap.Logger
}

func NewChangeStatus(
	repo domain.Repository,
	cal calendar.Calendar,
	publisher events.Publisher,
	slots *cache.SlotCache,
	logger *zap.Logger,
) *ChangeStatus {
	return &ChangeStatus{
		repo:      repo,
		cal:       cal,
		publisher: publisher,
		slots:     slots,
		logger:    logger,
	}
}

// Execute is the only path that moves a booking between statuses. Calendar
// sync is best-effort on both sides of the transition; only the storage
// write decides success.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	bookingID uint,
	newStatus domain.Status,
	actor string,
) (*ChangeStatusResult, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	old := domain.Status(b.Status)
	if old == newStatus {
		return &ChangeStatusResult{Booking: b, AlreadyProcessed: true}, nil
	}

	switch newStatus {
	case domain.StatusConfirmed:
		if b.CalendarEventID == nil && uc.cal.IsConfigured() {
			eventID, err := uc.cal.CreateEvent(ctx, b, &b.ServiceItem, &b.Stylist)
			if err != nil {
				uc.logger.Error("failed to sync booking to calendar",
					zap.Uint("booking_id", b.ID), zap.Error(err))
			} else if eventID != "" {
				b.CalendarEventID = &eventID
			}
		}

	case domain.StatusCancelled:
		if b.CalendarEventID != nil && uc.cal.IsConfigured() {
			if err := uc.cal.DeleteEvent(ctx, *b.CalendarEventID); err != nil {
				uc.logger.Error("failed to remove booking from calendar",
					zap.Uint("booking_id", b.ID), zap.Error(err))
			} else {
				b.CalendarEventID = nil
			}
		}
	}

	b.Status = string(newStatus)

	if err := uc.repo.SaveBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("booking status changed",
		zap.Uint("booking_id", b.ID),
		zap.String("old_status", string(old)),
		zap.String("new_status", string(newStatus)),
		zap.String("actor", actor),
	)

	uc.slots.InvalidateDay(ctx, b.StylistID, b.StartTime.Format("2006-01-02"))

	if err := uc.publisher.BookingStatusChanged(ctx, b.ID, old, newStatus); err != nil {
		uc.logger.Error("failed to enqueue status change event",
			zap.Uint("booking_id", b.ID), zap.Error(err))
	}

	return &ChangeStatusResult{Booking: b}, nil
}
