package booking

import (
	"context"
	"time"

	"github.com/LumiereBeauty/salon-scheduler/internal/cache"
	"github.com/LumiereBeauty/salon-scheduler/internal/clock"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
)

type Slot struct {
	Time    string `json:"time"`
	Display string `json:"display"`
}

type AvailableSlotsInput struct {
	StylistID uint
	ServiceID uint
	Date      string // 2006-01-02
}

type GetAvailableSlots struct {
	repo  domain.Repository
	clk   clock.Clock
	slots *cache.SlotCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	clk clock.Clock,
	slots *cache.SlotCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		clk:   clk,
		slots: slots,
	}
}

// Execute walks the half-hour grid inside business hours and probes the
// store per candidate. Pure read, no lock: a listed slot can be gone by the
// time a create lands, the create path re-checks under lock anyway.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in AvailableSlotsInput,
) ([]Slot, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	svc, err := uc.repo.GetServiceItemByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	now := uc.clk.Now()

	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	var cached []Slot
	if uc.slots.Get(ctx, stylist.ID, svc.ID, in.Date, &cached) {
		return cached, nil
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	slots := []Slot{}

	for hour := domain.OpeningHour; hour < domain.ClosingHour; hour++ {
		for minute := 0; minute < 60; minute += int(domain.SlotInterval.Minutes()) {

			slotTime := time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, minute, 0, 0,
				now.Location(),
			)

			// no booking in the past
			if !slotTime.After(now) {
				continue
			}

			if domain.RunsPastClose(slotTime.Add(duration)) {
				continue
			}

			conflict, err := uc.repo.HasConflictingBooking(
				ctx,
				stylist.ID,
				slotTime,
				svc.DurationMinutes,
				nil,
				false,
			)
			if err != nil {
				return nil, err
			}
			if conflict {
				continue
			}

			slots = append(slots, Slot{
				Time:    slotTime.Format("15:04"),
				Display: slotTime.Format("3:04 PM"),
			})
		}
	}

	uc.slots.Set(ctx, stylist.ID, svc.ID, in.Date, slots)

	return slots, nil
}
