package activity

import (
	"context"
	"log/slog"
)

// Sink receives events after they are persisted, e.g. a Kafka producer.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker drains the publisher inbox into the store and any configured sinks.
// Sink failures are logged, not retried; the store remains the local record.
type Worker struct {
	store  Store
	inbox  <-chan Event
	sinks  []Sink
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger, sinks ...Sink) *Worker {
	return &Worker{store: store, inbox: inbox, sinks: sinks, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to append activity event",
					"action", event.Action,
					"error", err,
				)
				continue
			}
			for _, sink := range w.sinks {
				if err := sink.Publish(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "failed to publish activity event",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
