package booking

import (
	"context"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/models"
)

type CancelByCustomer struct {
	repo         domain.Repository
	changeStatus *ChangeStatus
}

func NewCancelByCustomer(
	repo domain.Repository,
	changeStatus *ChangeStatus,
) *CancelByCustomer {
	return &CancelByCustomer{
		repo:         repo,
		changeStatus: changeStatus,
	}
}

// Execute cancels the customer's own booking. The lookup is scoped to the
// user, so acting on someone else's booking reads as not found. An already
// cancelled booking is refused before the status path runs, which keeps a
// repeated cancel from emitting a second notification.
func (uc *CancelByCustomer) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.CanCustomerCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	res, err := uc.changeStatus.Execute(ctx, b.ID, domain.StatusCancelled, "customer")
	if err != nil {
		return nil, err
	}
	return res.Booking, nil
}
