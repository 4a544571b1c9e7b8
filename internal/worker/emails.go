package worker

import (
	"fmt"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

const (
	dateFormat = "Monday, January 2, 2006"
	timeFormat = "3:04 PM"
)

func confirmationEmail(b *models.Booking, fromName string) (subject, body string) {
	date := b.StartTime.Format(dateFormat)
	start := b.StartTime.Format(timeFormat)
	end := b.EndTime(&b.ServiceItem).Format(timeFormat)

	notes := ""
	if b.Notes != "" {
		notes = "Notes: " + b.Notes + "\n\n"
	}

	subject = "Appointment Confirmed - " + date + " at " + start
	body = fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your hair salon appointment has been received!\n\n"+
			"BOOKING DETAILS:\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Service: %s\n"+
			"Price: $%.2f\n"+
			"Stylist: %s\n\n"+
			"%s"+
			"We look forward to seeing you!\n\n"+
			"If you need to cancel or reschedule, please contact us as soon as possible.\n\n"+
			"Best regards,\n%s",
		b.ClientName,
		date,
		start, end,
		b.ServiceItem.Title,
		b.ServiceItem.Price,
		b.Stylist.Name,
		notes,
		fromName,
	)
	return subject, body
}

func adminActionEmail(b *models.Booking, approveURL, rejectURL string) (subject, body string) {
	phone := b.ClientPhone
	if phone == "" {
		phone = "Not provided"
	}

	notes := ""
	if b.Notes != "" {
		notes = "Client notes: " + b.Notes + "\n\n"
	}

	subject = "New Booking Request - " + b.ServiceItem.Title
	body = fmt.Sprintf(
		"New booking request - action required.\n\n"+
			"Appointment: %s at %s\n"+
			"Service: %s (%d minutes, $%.2f)\n"+
			"Stylist: %s\n\n"+
			"Client: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n\n"+
			"%s"+
			"Approve: %s\n"+
			"Reject:  %s\n\n"+
			"Clicking a link instantly updates the booking status; the client is\n"+
			"notified automatically. Links expire and stop working once the booking\n"+
			"has been processed.",
		b.StartTime.Format(dateFormat),
		b.StartTime.Format(timeFormat),
		b.ServiceItem.Title, b.ServiceItem.DurationMinutes, b.ServiceItem.Price,
		b.Stylist.Name,
		b.ClientName,
		b.ClientEmail,
		phone,
		notes,
		approveURL,
		rejectURL,
	)
	return subject, body
}

// statusChangeEmail distinguishes refused (pending -> cancelled), cancelled
// (confirmed -> cancelled) and confirmed transitions; everything else gets
// generic copy.
func statusChangeEmail(b *models.Booking, old, new domain.Status, fromName string) (subject, body string) {
	date := b.StartTime.Format(dateFormat)
	start := b.StartTime.Format(timeFormat)

	var headline, message string

	switch domain.ClassifyChange(old, new) {
	case domain.ChangeConfirmed:
		headline = "Booking Confirmed"
		message = "Great news! Your appointment has been confirmed. We look forward to seeing you."
	case domain.ChangeRefused:
		headline = "Booking Refused"
		message = "Unfortunately we are unable to accommodate your appointment request at this time. Please choose another slot or contact us directly."
	case domain.ChangeCancelled:
		headline = "Booking Cancelled"
		message = "Your confirmed appointment has been cancelled. If this is unexpected, please contact us."
	default:
		headline = "Booking Status Updated"
		message = fmt.Sprintf(
			"Your booking status has been changed from %s to %s.",
			old, new,
		)
	}

	subject = headline + " - " + date + " at " + start
	body = fmt.Sprintf(
		"Hello %s,\n\n"+
			"%s\n\n"+
			"APPOINTMENT:\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Service: %s\n"+
			"Stylist: %s\n\n"+
			"Best regards,\n%s",
		b.ClientName,
		message,
		date,
		start,
		b.ServiceItem.Title,
		b.Stylist.Name,
		fromName,
	)
	return subject, body
}
