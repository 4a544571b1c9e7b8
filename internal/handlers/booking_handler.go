package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/middleware"
	ucBooking "github.com/LumiereBeauty/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	slotsUC        *ucBooking.GetAvailableSlots
	cancelUC       *ucBooking.CancelByCustomer
	listUpcomingUC *ucBooking.ListUpcomingByUser
	listByRangeUC  *ucBooking.ListBookingsByRange
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	slotsUC *ucBooking.GetAvailableSlots,
	cancelUC *ucBooking.CancelByCustomer,
	listUpcomingUC *ucBooking.ListUpcomingByUser,
	listByRangeUC *ucBooking.ListBookingsByRange,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		slotsUC:        slotsUC,
		cancelUC:       cancelUC,
		listUpcomingUC: listUpcomingUC,
		listByRangeUC:  listByRangeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	StylistID   uint   `json:"stylist_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	Notes       string `json:"notes"`
	ClientPhone string `json:"client_phone"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	stylistID := c.Query("stylist_id")
	date := c.Query("date")
	serviceID := c.Query("service_id")

	if stylistID == "" || date == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_parameters", "Missing required parameters.")
		return
	}

	sid, err1 := strconv.ParseUint(stylistID, 10, 32)
	svid, err2 := strconv.ParseUint(serviceID, 10, 32)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid stylist or service id.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.AvailableSlotsInput{
		StylistID: uint(sid),
		ServiceID: uint(svid),
		Date:      date,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Invalid stylist or service.")
			return
		}
		if httperr.IsBusiness(err, httperr.CodeInvalidInput) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid date format.")
			return
		}
		httperr.Internal(c, "slots_failed", "Failed to load available slots.")
		return
	}

	c.JSON(200, gin.H{"slots": slots})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Missing required fields.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      userID,
		StylistID:   req.StylistID,
		ServiceID:   req.ServiceID,
		Date:        req.BookingDate,
		Time:        req.BookingTime,
		Notes:       req.Notes,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		var unavailable *ucBooking.SlotUnavailableError
		if errors.As(err, &unavailable) {
			c.JSON(409, gin.H{
				"error": "SLOT UNAVAILABLE: This time slot is already booked.",
				"details": gin.H{
					"requested_time": unavailable.RequestedTime.Format("2006-01-02 15:04"),
					"stylist":        unavailable.StylistName,
					"service":        unavailable.ServiceName,
				},
			})
			return
		}

		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidInput):
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid date/time format.")
		case httperr.IsBusiness(err, httperr.CodePastBooking):
			httperr.BadRequest(c, httperr.CodePastBooking, "Cannot book appointments in the past.")
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			httperr.NotFound(c, httperr.CodeNotFound, "Invalid stylist or service.")
		default:
			httperr.Internal(c, "booking_failed", "Failed to create booking.")
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Booking created successfully!",
		"booking": gin.H{
			"id":      res.Booking.ID,
			"date":    res.Booking.StartTime.Format("2006-01-02"),
			"time":    res.Booking.StartTime.Format("15:04"),
			"stylist": res.Stylist.Name,
			"service": res.Service.Title,
			"price":   res.Service.Price,
		},
	})
}

// ======================================================
// CANCEL (customer)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid booking id.")
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), uint(id), userID); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Booking already cancelled.")
			return
		}
		httperr.Internal(c, "cancel_failed", "Failed to cancel booking.")
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Booking cancelled successfully"})
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUpcomingUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to load bookings.")
		return
	}

	c.JSON(200, bookings)
}

// ======================================================
// BUSY BLOCKS (booking page calendar)
// ======================================================

// BusyBookings exposes confirmed bookings as anonymous busy blocks for the
// customer booking calendar.
func (h *BookingHandler) BusyBookings(c *gin.Context) {
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

	bookings, err := h.listByRangeUC.Execute(
		c.Request.Context(),
		start,
		end,
		[]domain.Status{domain.StatusConfirmed},
	)
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to load bookings.")
		return
	}

	events := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		events = append(events, gin.H{
			"id":    strconv.FormatUint(uint64(b.ID), 10),
			"title": "Busy",
			"start": b.StartTime.Format("2006-01-02T15:04:05"),
			"end":   b.EndTime(&b.ServiceItem).Format("2006-01-02T15:04:05"),
			"extendedProps": gin.H{
				"type":      "busy",
				"stylistId": b.StylistID,
			},
		})
	}

	c.JSON(200, events)
}
