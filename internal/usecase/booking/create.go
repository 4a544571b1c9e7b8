package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/LumiereBeauty/salon-scheduler/internal/cache"
	"github.com/LumiereBeauty/salon-scheduler/internal/clock"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/events"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	StylistID uint
	ServiceID uint

	Date string // 2006-01-02
	Time string // 15:04

	Notes       string
	ClientPhone string
}

type CreateBookingResult struct {
	Booking *models.Booking
	Stylist *models.Stylist
	Service *models.ServiceItem
}

// SlotUnavailableError carries the detail the conflict response exposes.
type SlotUnavailableError struct {
	RequestedTime time.Time
	StylistName   string
	ServiceName   string
}

func (e *SlotUnavailableError) Error() string {
	return httperr.CodeSlotUnavailable
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo      domain.Repository
	publisher events.Publisher
	clk       clock.Clock
	slots     *cache.SlotCache
	logger    *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	publisher events.Publisher,
	clk clock.Clock,
	slots *cache.SlotCache,
	logger *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		publisher: publisher,
		clk:       clk,
		slots:     slots,
		logger:    logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute commits a booking if and only if the slot is still free. The
// conflict check runs again inside the transaction with the rows locked, so
// of two concurrent requests for overlapping windows exactly one commits;
// the listing a client saw before is never trusted.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	now := uc.clk.Now()

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		now.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	if !start.After(now) {
		return nil, httperr.ErrBusiness(httperr.CodePastBooking)
	}

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	stylist, err := uc.repo.GetStylistByID(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	svc, err := uc.repo.GetServiceItemByID(ctx, in.ServiceID)
	if err != nil || !svc.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	var created *models.Booking

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		conflict, err := tx.HasConflictingBooking(
			ctx,
			stylist.ID,
			start,
			svc.DurationMinutes,
			nil,
			true, // lock: serialize concurrent checks on this window
		)
		if err != nil {
			return err
		}

		if conflict {
			return &SlotUnavailableError{
				RequestedTime: start,
				StylistName:   stylist.Name,
				ServiceName:   svc.Title,
			}
		}

		b := &models.Booking{
			UserID:        user.ID,
			StylistID:     stylist.ID,
			ServiceItemID: svc.ID,
			StartTime:     start,
			Status:        string(domain.InitialStatus()),
			Notes:         in.Notes,
			ClientName:    user.FullName(),
			ClientEmail:   user.Email,
			ClientPhone:   in.ClientPhone,
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.slots.InvalidateDay(ctx, stylist.ID, start.Format("2006-01-02"))

	// Post-commit notifications are fire-and-forget: the booking already
	// exists, a lost event must not surface as a failure.
	if err := uc.publisher.BookingCreated(ctx, created.ID); err != nil {
		uc.logger.Error("failed to enqueue booking created event",
			zap.Uint("booking_id", created.ID), zap.Error(err))
	}
	if err := uc.publisher.AdminNotified(ctx, created.ID); err != nil {
		uc.logger.Error("failed to enqueue admin notification event",
			zap.Uint("booking_id", created.ID), zap.Error(err))
	}

	return &CreateBookingResult{
		Booking: created,
		Stylist: stylist,
		Service: svc,
	}, nil
}
