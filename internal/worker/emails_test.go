package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:          7,
		StartTime:   time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Status:      string(domain.StatusPending),
		ClientName:  "Amelia Hart",
		ClientEmail: "amelia@example.com",
		Notes:       "first visit",
		ServiceItem: models.ServiceItem{
			Title:           "Women's Haircut",
			Price:           55,
			DurationMinutes: 45,
		},
		Stylist: models.Stylist{Name: "Isabella"},
	}
}

func TestConfirmationEmail(t *testing.T) {
	subject, body := confirmationEmail(sampleBooking(), "Lumiere Hair Salon")

	assert.Equal(t, "Appointment Confirmed - Monday, September 14, 2026 at 10:00 AM", subject)

	assert.Contains(t, body, "Hello Amelia Hart,")
	assert.Contains(t, body, "Date: Monday, September 14, 2026")
	assert.Contains(t, body, "Time: 10:00 AM - 10:45 AM")
	assert.Contains(t, body, "Service: Women's Haircut")
	assert.Contains(t, body, "Price: $55.00")
	assert.Contains(t, body, "Stylist: Isabella")
	assert.Contains(t, body, "Notes: first visit")
	assert.Contains(t, body, "Lumiere Hair Salon")
}

func TestConfirmationEmail_NoNotes(t *testing.T) {
	b := sampleBooking()
	b.Notes = ""

	_, body := confirmationEmail(b, "Lumiere Hair Salon")
	assert.NotContains(t, body, "Notes:")
}

func TestAdminActionEmail(t *testing.T) {
	b := sampleBooking()
	b.ClientPhone = "555-0101"

	subject, body := adminActionEmail(b,
		"https://salon.example/booking/7/approve?token=abc",
		"https://salon.example/booking/7/reject?token=def",
	)

	assert.Equal(t, "New Booking Request - Women's Haircut", subject)
	assert.Contains(t, body, "Service: Women's Haircut (45 minutes, $55.00)")
	assert.Contains(t, body, "Phone: 555-0101")
	assert.Contains(t, body, "Approve: https://salon.example/booking/7/approve?token=abc")
	assert.Contains(t, body, "Reject:  https://salon.example/booking/7/reject?token=def")
}

func TestAdminActionEmail_MissingPhone(t *testing.T) {
	_, body := adminActionEmail(sampleBooking(), "a", "b")
	assert.Contains(t, body, "Phone: Not provided")
}

func TestStatusChangeEmail(t *testing.T) {
	tests := []struct {
		name     string
		old      domain.Status
		new      domain.Status
		headline string
	}{
		{"approval", domain.StatusPending, domain.StatusConfirmed, "Booking Confirmed"},
		{"refusal", domain.StatusPending, domain.StatusCancelled, "Booking Refused"},
		{"cancellation", domain.StatusConfirmed, domain.StatusCancelled, "Booking Cancelled"},
		{"completion", domain.StatusConfirmed, domain.StatusCompleted, "Booking Status Updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := statusChangeEmail(sampleBooking(), tt.old, tt.new, "Lumiere Hair Salon")

			assert.Contains(t, subject, tt.headline)
			assert.Contains(t, subject, "Monday, September 14, 2026 at 10:00 AM")
			assert.Contains(t, body, "Hello Amelia Hart,")
			assert.Contains(t, body, "Service: Women's Haircut")
		})
	}
}

func TestStatusChangeEmail_GenericMentionsBothStatuses(t *testing.T) {
	_, body := statusChangeEmail(
		sampleBooking(),
		domain.StatusConfirmed,
		domain.StatusCompleted,
		"Lumiere Hair Salon",
	)
	assert.Contains(t, body, "changed from confirmed to completed")
}
