package booking

import (
	"context"
	"time"

	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetStylistByID(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	GetServiceItemByID(
		ctx context.Context,
		id uint,
	) (*models.ServiceItem, error)

	ListActiveStylists(
		ctx context.Context,
	) ([]models.Stylist, error)

	ListActiveServiceItems(
		ctx context.Context,
	) ([]models.ServiceItem, error)

	// -------- Booking (create / conflict) --------

	// HasConflictingBooking reports whether the stylist has a non-cancelled
	// booking overlapping [start, start+duration). The end of each existing
	// booking is derived from its currently linked service. When lock is
	// true the matching rows are read FOR UPDATE, so it must run inside
	// Transaction.
	HasConflictingBooking(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		durationMinutes int,
		excludeBookingID *uint,
		lock bool,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// Transaction runs fn against a repository bound to one database
	// transaction; returning an error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListBookingsByRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
		statuses []Status,
	) ([]models.Booking, error)

	ListUpcomingByUser(
		ctx context.Context,
		userID uint,
		now time.Time,
	) ([]models.Booking, error)
}
