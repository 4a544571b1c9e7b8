package httperr

import "errors"

// Business error codes surfaced by the booking core.
const (
	CodeSlotUnavailable = "slot_unavailable"
	CodeInvalidInput    = "invalid_input"
	CodeInvalidStatus   = "invalid_status"
	CodePastBooking     = "past_booking"
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
