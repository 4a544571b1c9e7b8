package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	ucBooking "github.com/LumiereBeauty/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	listByRangeUC  *ucBooking.ListBookingsByRange
	changeStatusUC *ucBooking.ChangeStatus
	statisticsUC   *ucBooking.MonthlyStatistics
}

func NewAdminBookingHandler(
	listByRangeUC *ucBooking.ListBookingsByRange,
	changeStatusUC *ucBooking.ChangeStatus,
	statisticsUC *ucBooking.MonthlyStatistics,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listByRangeUC:  listByRangeUC,
		changeStatusUC: changeStatusUC,
		statisticsUC:   statisticsUC,
	}
}

// statusColors maps booking statuses to the calendar event colors the admin
// dashboard renders.
var statusColors = map[string]string{
	string(domain.StatusPending):   "#FFA500",
	string(domain.StatusConfirmed): "#28a745",
	string(domain.StatusCancelled): "#dc3545",
	string(domain.StatusCompleted): "#6c757d",
}

// ======================================================
// CALENDAR FEED
// ======================================================

func (h *AdminBookingHandler) Calendar(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_parameters", "Missing start or end date.")
		return
	}

	start, err1 := time.Parse("2006-01-02", startStr)
	end, err2 := time.Parse("2006-01-02", endStr)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid date format.")
		return
	}

	bookings, err := h.listByRangeUC.Execute(c.Request.Context(), start, end, nil)
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to load bookings.")
		return
	}

	events := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]

		color, ok := statusColors[b.Status]
		if !ok {
			color = statusColors[string(domain.StatusPending)]
		}

		events = append(events, gin.H{
			"id":              strconv.FormatUint(uint64(b.ID), 10),
			"title":           b.ClientName + " - " + b.ServiceItem.Title,
			"start":           b.StartTime.Format("2006-01-02T15:04:05"),
			"end":             b.EndTime(&b.ServiceItem).Format("2006-01-02T15:04:05"),
			"backgroundColor": color,
			"borderColor":     color,
			"extendedProps": gin.H{
				"status":       b.Status,
				"client_name":  b.ClientName,
				"client_email": b.ClientEmail,
				"client_phone": b.ClientPhone,
				"stylist":      b.Stylist.Name,
				"service":      b.ServiceItem.Title,
				"price":        b.ServiceItem.Price,
				"notes":        b.Notes,
			},
		})
	}

	c.JSON(200, events)
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Missing status field.")
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidStatus, "Invalid status value.")
		return
	}

	res, err := h.changeStatusUC.Execute(c.Request.Context(), uint(id), status, "admin")
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Booking not found.")
			return
		}
		httperr.Internal(c, "update_failed", "Failed to update booking status.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"status":  res.Booking.Status,
	})
}

// ======================================================
// STATISTICS
// ======================================================

func (h *AdminBookingHandler) Statistics(c *gin.Context) {
	stats, err := h.statisticsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "statistics_failed", "Failed to compute statistics.")
		return
	}

	c.JSON(200, stats)
}
