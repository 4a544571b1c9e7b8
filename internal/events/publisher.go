package events

import (
	"context"

	"github.com/hibiken/asynq"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
)

// Publisher enqueues booking domain events. Callers treat publishing as
// fire-and-forget: a failed enqueue is logged by the caller, never
// propagated into the booking operation's result.
type Publisher interface {
	BookingCreated(ctx context.Context, bookingID uint) error
	AdminNotified(ctx context.Context, bookingID uint) error
	BookingStatusChanged(ctx context.Context, bookingID uint, old, new domain.Status) error
}

type AsynqPublisher struct {
	client *asynq.Client
}

func NewAsynqPublisher(opt asynq.RedisClientOpt) *AsynqPublisher {
	return &AsynqPublisher{client: asynq.NewClient(opt)}
}

func (p *AsynqPublisher) BookingCreated(ctx context.Context, bookingID uint) error {
	task, err := NewBookingCreatedTask(bookingID)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, task)
	return err
}

func (p *AsynqPublisher) AdminNotified(ctx context.Context, bookingID uint) error {
	task, err := NewAdminBookingNotifyTask(bookingID)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, task)
	return err
}

func (p *AsynqPublisher) BookingStatusChanged(
	ctx context.Context,
	bookingID uint,
	old, new domain.Status,
) error {
	task, err := NewBookingStatusChangedTask(bookingID, string(old), string(new))
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, task)
	return err
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

var _ Publisher = (*AsynqPublisher)(nil)
