package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

func seedBooking(repo *fakeRepo, status domain.Status) *models.Booking {
	user, stylist, svc := seedCatalog(repo)
	b := &models.Booking{
		UserID:        user.ID,
		StylistID:     stylist.ID,
		ServiceItemID: svc.ID,
		StartTime:     time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Status:        string(status),
		ClientName:    "Amelia Hart",
		ClientEmail:   "amelia@example.com",
	}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

func TestChangeStatus_ConfirmAttachesCalendarEvent(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, domain.StatusPending)
	pub := &fakePublisher{}
	cal := &fakeCalendar{configured: true, nextID: "evt-123"}

	uc := NewChangeStatus(repo, cal, pub, noCache, zap.NewNop())
	res, err := uc.Execute(context.Background(), b.ID, domain.StatusConfirmed, "admin")
	require.NoError(t, err)
	assert.False(t, res.AlreadyProcessed)
	assert.Equal(t, string(domain.StatusConfirmed), res.Booking.Status)

	require.NotNil(t, res.Booking.CalendarEventID)
	assert.Equal(t, "evt-123", *res.Booking.CalendarEventID)
	assert.Equal(t, []uint{b.ID}, cal.created)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "status_changed", pub.events[0].kind)
	assert.Equal(t, domain.StatusPending, pub.events[0].oldStatus)
	assert.Equal(t, domain.StatusConfirmed, pub.events[0].newStatus)
}

func TestChangeStatus_CalendarFailureDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, domain.StatusPending)
	pub := &fakePublisher{}
	cal := &fakeCalendar{configured: true, createErr: errors.New("api unavailable")}

	uc := NewChangeStatus(repo, cal, pub, noCache, zap.NewNop())
	res, err := uc.Execute(context.Background(), b.ID, domain.StatusConfirmed, "admin")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), res.Booking.Status)
	assert.Nil(t, res.Booking.CalendarEventID)
}

func TestChangeStatus_CancelRemovesCalendarEvent(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, domain.StatusConfirmed)

	eventID := "evt-123"
	stored := repo.bookings[b.ID]
	stored.CalendarEventID = &eventID

	pub := &fakePublisher{}
	cal := &fakeCalendar{configured: true}

	uc := NewChangeStatus(repo, cal, pub, noCache, zap.NewNop())
	res, err := uc.Execute(context.Background(), b.ID, domain.StatusCancelled, "admin")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), res.Booking.Status)
	assert.Nil(t, res.Booking.CalendarEventID)
	assert.Equal(t, []string{"evt-123"}, cal.deleted)
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, domain.StatusConfirmed)
	pub := &fakePublisher{}

	uc := NewChangeStatus(repo, &fakeCalendar{}, pub, noCache, zap.NewNop())
	res, err := uc.Execute(context.Background(), b.ID, domain.StatusConfirmed, "admin")
	require.NoError(t, err)

	assert.True(t, res.AlreadyProcessed)
	// no second notification for a repeated approval
	assert.Empty(t, pub.events)
}

func TestChangeStatus_UnknownBooking(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	uc := NewChangeStatus(repo, &fakeCalendar{}, &fakePublisher{}, noCache, zap.NewNop())
	_, err := uc.Execute(context.Background(), 42, domain.StatusConfirmed, "admin")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestChangeStatus_AdminMaySetAnyStatus(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, domain.StatusCancelled)

	uc := NewChangeStatus(repo, &fakeCalendar{}, &fakePublisher{}, noCache, zap.NewNop())
	res, err := uc.Execute(context.Background(), b.ID, domain.StatusConfirmed, "admin")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), res.Booking.Status)
}
