package clock

import "time"

// Clock abstracts wall-clock reads so slot filtering and the
// no-booking-in-the-past rule can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System returns a clock reading time.Now in the salon's timezone.
// The whole system runs in a single timezone.
func System(tz string) Clock {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a clock frozen at a single instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
