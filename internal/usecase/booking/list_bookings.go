package booking

import (
	"context"
	"time"

	"github.com/LumiereBeauty/salon-scheduler/internal/clock"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

type ListBookingsByRange struct {
	repo domain.Repository
}

func NewListBookingsByRange(repo domain.Repository) *ListBookingsByRange {
	return &ListBookingsByRange{repo: repo}
}

func (uc *ListBookingsByRange) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsByRange(ctx, start, end, statuses)
}

type ListUpcomingByUser struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewListUpcomingByUser(repo domain.Repository, clk clock.Clock) *ListUpcomingByUser {
	return &ListUpcomingByUser{repo: repo, clk: clk}
}

func (uc *ListUpcomingByUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListUpcomingByUser(ctx, userID, uc.clk.Now())
}
