package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

// ======================================================
// IN-MEMORY REPOSITORY
// ======================================================

type fakeRepo struct {
	mu sync.Mutex

	users    map[uint]*models.User
	stylists map[uint]*models.Stylist
	services map[uint]*models.ServiceItem
	bookings map[uint]*models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]*models.User{},
		stylists: map[uint]*models.Stylist{},
		services: map[uint]*models.ServiceItem{},
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

var errNotFound = errors.New("record not found")

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetStylistByID(_ context.Context, id uint) (*models.Stylist, error) {
	if s, ok := r.stylists[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetServiceItemByID(_ context.Context, id uint) (*models.ServiceItem, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListActiveStylists(_ context.Context) ([]models.Stylist, error) {
	var out []models.Stylist
	for _, s := range r.stylists {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListActiveServiceItems(_ context.Context) ([]models.ServiceItem, error) {
	var out []models.ServiceItem
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) HasConflictingBooking(
	_ context.Context,
	stylistID uint,
	start time.Time,
	durationMinutes int,
	excludeBookingID *uint,
	_ bool,
) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, b := range r.bookings {
		if b.StylistID != stylistID {
			continue
		}
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}

		// end derived from the currently linked service, never stored
		svc, ok := r.services[b.ServiceItemID]
		if !ok {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime(svc), start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++

	if b.Status == "" {
		b.Status = string(domain.InitialStatus())
	}

	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) Transaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errNotFound
	}

	out := *b
	if svc, ok := r.services[b.ServiceItemID]; ok {
		out.ServiceItem = *svc
	}
	if st, ok := r.stylists[b.StylistID]; ok {
		out.Stylist = *st
	}
	return &out, nil
}

func (r *fakeRepo) GetBookingForUser(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	b, err := r.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, errNotFound
	}
	return b, nil
}

func (r *fakeRepo) SaveBooking(_ context.Context, b *models.Booking) error {
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) ListBookingsByRange(
	_ context.Context,
	start, end time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		if len(statuses) > 0 {
			keep := false
			for _, s := range statuses {
				if b.Status == string(s) {
					keep = true
					break
				}
			}
			if !keep {
				continue
			}
		}

		cp := *b
		if svc, ok := r.services[b.ServiceItemID]; ok {
			cp.ServiceItem = *svc
		}
		if st, ok := r.stylists[b.StylistID]; ok {
			cp.Stylist = *st
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeRepo) ListUpcomingByUser(
	_ context.Context,
	userID uint,
	now time.Time,
) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.StartTime.After(now) {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// EVENT RECORDER
// ======================================================

type recordedEvent struct {
	kind      string
	bookingID uint
	oldStatus domain.Status
	newStatus domain.Status
}

type fakePublisher struct {
	events []recordedEvent
	fail   bool
}

func (p *fakePublisher) BookingCreated(_ context.Context, bookingID uint) error {
	if p.fail {
		return errors.New("queue unavailable")
	}
	p.events = append(p.events, recordedEvent{kind: "created", bookingID: bookingID})
	return nil
}

func (p *fakePublisher) AdminNotified(_ context.Context, bookingID uint) error {
	if p.fail {
		return errors.New("queue unavailable")
	}
	p.events = append(p.events, recordedEvent{kind: "admin_notify", bookingID: bookingID})
	return nil
}

func (p *fakePublisher) BookingStatusChanged(
	_ context.Context,
	bookingID uint,
	old, new domain.Status,
) error {
	if p.fail {
		return errors.New("queue unavailable")
	}
	p.events = append(p.events, recordedEvent{
		kind:      "status_changed",
		bookingID: bookingID,
		oldStatus: old,
		newStatus: new,
	})
	return nil
}

func (p *fakePublisher) countKind(kind string) int {
	n := 0
	for _, e := range p.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// ======================================================
// CALENDAR RECORDER
// ======================================================

type fakeCalendar struct {
	configured bool
	nextID     string
	createErr  error

	created []uint
	deleted []string
}

func (c *fakeCalendar) IsConfigured() bool { return c.configured }

func (c *fakeCalendar) CreateEvent(
	_ context.Context,
	b *models.Booking,
	_ *models.ServiceItem,
	_ *models.Stylist,
) (string, error) {
	if c.createErr != nil {
		return "", c.createErr
	}
	c.created = append(c.created, b.ID)
	return c.nextID, nil
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	c.deleted = append(c.deleted, eventID)
	return nil
}

// ======================================================
// SEED HELPERS
// ======================================================

func seedCatalog(r *fakeRepo) (*models.User, *models.Stylist, *models.ServiceItem) {
	user := &models.User{
		ID:        1,
		FirstName: "Amelia",
		LastName:  "Hart",
		Email:     "amelia@example.com",
	}
	stylist := &models.Stylist{ID: 1, Name: "Isabella", IsActive: true}
	svc := &models.ServiceItem{
		ID:              1,
		Title:           "Women's Haircut",
		Price:           55,
		DurationMinutes: 45,
		IsActive:        true,
	}

	r.users[user.ID] = user
	r.stylists[stylist.ID] = stylist
	r.services[svc.ID] = svc
	return user, stylist, svc
}
