package booking

import "github.com/LumiereBeauty/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

func InitialStatus() Status {
	return StatusPending
}

// CanCustomerCancel refuses re-cancelling. Admin status changes are not
// guarded beyond the equal-status no-op; any of the four statuses may be
// set directly, as in the back-office flows.
func CanCustomerCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	return nil
}

// ===============================
// Status-change notification kind
// ===============================

// ChangeKind selects the customer-facing copy for a status transition.
type ChangeKind int

const (
	ChangeConfirmed ChangeKind = iota // any -> confirmed
	ChangeRefused                     // pending -> cancelled
	ChangeCancelled                   // confirmed -> cancelled
	ChangeGeneric                     // everything else
)

func ClassifyChange(old, new Status) ChangeKind {
	switch new {
	case StatusConfirmed:
		return ChangeConfirmed
	case StatusCancelled:
		if old == StatusPending {
			return ChangeRefused
		}
		return ChangeCancelled
	case StatusPending, StatusCompleted:
		return ChangeGeneric
	}
	return ChangeGeneric
}
