package booking

import "time"

// Fixed business hours. Single salon, single timezone.
const (
	OpeningHour  = 9
	ClosingHour  = 18
	SlotInterval = 30 * time.Minute
)

// RunsPastClose reports whether an appointment ending at end would run past
// closing. Only the hour of the end time is compared against the closing
// hour; an appointment ending 18:00 sharp is rejected. This matches the
// long-standing listing behavior and must not be "fixed" independently of it.
func RunsPastClose(end time.Time) bool {
	return end.Hour() >= ClosingHour
}

// Overlaps is the half-open interval overlap rule: [aStart, aEnd) and
// [bStart, bEnd) conflict iff each starts before the other ends.
// Boundary-touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
