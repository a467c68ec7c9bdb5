package activity

import (
	"context"
	"log/slog"

	"taskdeck/pkg/requestcontext"
)

// Emitter is what domain services depend on; Publisher is the production
// implementation.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Publisher hands events to the worker through a bounded buffer. Emission is
// fire-and-forget: a full buffer drops the event rather than stalling the
// request that produced it.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(bufferSize int, logger *slog.Logger) *Publisher {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &Publisher{
		inbox:  make(chan Event, bufferSize),
		logger: logger,
	}
}

// Emit enriches the event from the request context and queues it.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.Device == "" {
		event.Device = requestcontext.DeviceName(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "activity buffer full, dropping event",
			"action", event.Action,
			"request_id", event.RequestID,
		)
	}
}

// Inbox exposes the receive side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
