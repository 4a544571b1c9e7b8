package booking

import (
	"context"
	"time"

	"github.com/LumiereBeauty/salon-scheduler/internal/clock"
	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
)

type StatisticsResult struct {
	Month         string         `json:"month"`
	TotalBookings int            `json:"total_bookings"`
	TotalRevenue  float64        `json:"total_revenue"`
	ByStatus      map[string]int `json:"by_status"`
}

type MonthlyStatistics struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewMonthlyStatistics(repo domain.Repository, clk clock.Clock) *MonthlyStatistics {
	return &MonthlyStatistics{repo: repo, clk: clk}
}

func (uc *MonthlyStatistics) Execute(ctx context.Context) (*StatisticsResult, error) {

	now := uc.clk.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsByRange(ctx, monthStart, monthEnd, nil)
	if err != nil {
		return nil, err
	}

	stats := &StatisticsResult{
		Month:         now.Format("January 2006"),
		TotalBookings: len(bookings),
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCancelled): 0,
			string(domain.StatusCompleted): 0,
		},
	}

	for i := range bookings {
		stats.TotalRevenue += bookings[i].ServiceItem.Price
		stats.ByStatus[bookings[i].Status]++
	}

	return stats, nil
}
