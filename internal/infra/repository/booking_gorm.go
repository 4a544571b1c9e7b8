package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetStylistByID(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *BookingGormRepository) GetServiceItemByID(
	ctx context.Context,
	id uint,
) (*models.ServiceItem, error) {

	var svc models.ServiceItem
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveStylists(
	ctx context.Context,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *BookingGormRepository) ListActiveServiceItems(
	ctx context.Context,
) ([]models.ServiceItem, error) {

	var items []models.ServiceItem
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// HasConflictingBooking joins service_items so the end of each existing
// booking is computed from the service's current duration; bookings carry
// no end column. Under lock the matching rows are selected FOR UPDATE
// (rows, not a COUNT: postgres cannot lock an aggregate), serializing
// concurrent checks for the same stylist and window until the enclosing
// transaction ends.
func (r *BookingGormRepository) HasConflictingBooking(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	durationMinutes int,
	excludeBookingID *uint,
	lock bool,
) (bool, error) {

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN service_items ON service_items.id = bookings.service_item_id").
		Where(
			"bookings.stylist_id = ? AND bookings.status != ?",
			stylistID,
			string(domain.StatusCancelled),
		).
		Where(
			"bookings.start_time < ? AND bookings.start_time + make_interval(mins => service_items.duration_minutes) > ?",
			end,
			start,
		)

	if excludeBookingID != nil {
		q = q.Where("bookings.id != ?", *excludeBookingID)
	}

	if lock {
		q = q.Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "bookings"},
		})
	}

	var conflicts []models.Booking
	if err := q.Select("bookings.id").Find(&conflicts).Error; err != nil {
		return false, err
	}

	return len(conflicts) > 0, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Stylist").
		Preload("ServiceItem").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("ServiceItem").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Stylist").
		Preload("ServiceItem").
		Where("start_time >= ? AND start_time < ?", start, end)

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		q = q.Where("status IN ?", values)
	}

	var bookings []models.Booking
	if err := q.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListUpcomingByUser(
	ctx context.Context,
	userID uint,
	now time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Stylist").
		Preload("ServiceItem").
		Where(
			"user_id = ? AND start_time >= ? AND status != ?",
			userID,
			now,
			string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
