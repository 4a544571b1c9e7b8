package worker

import (
	"github.com/hibiken/asynq"

	"github.com/LumiereBeauty/salon-scheduler/internal/events"
)

// NewServer builds the asynq server and mux for the booking queue.
func NewServer(opt asynq.RedisClientOpt, h *Handlers) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(events.TypeBookingCreated, h.HandleBookingCreated)
	mux.HandleFunc(events.TypeAdminBookingNotify, h.HandleAdminNotify)
	mux.HandleFunc(events.TypeBookingStatusChanged, h.HandleStatusChanged)

	return srv, mux
}
