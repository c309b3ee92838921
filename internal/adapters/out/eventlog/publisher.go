// Package eventlog provides an EventPublisher that emits outbox entries as
// structured log records. It stands in for a message broker until one is
// wired; downstream consumers can tail the log or the adapter can be swapped
// behind the same port.
package eventlog

import (
	"context"
	"log/slog"

	"careplan/internal/core/domain/model/outbox"
)

// SlogEventPublisher publishes integration events to a structured logger.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish emits the entry as a structured log record. It never fails, so
// every relayed entry moves to processed.
func (p *SlogEventPublisher) Publish(ctx context.Context, entry *outbox.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "integration event published",
		"eventId", entry.ID().String(),
		"eventName", string(entry.EventName()),
		"aggregateType", entry.AggregateType(),
		"aggregateId", entry.AggregateID().String(),
		"occurredAt", entry.CreatedAt(),
		"payload", string(entry.Payload()),
	)

	return nil
}
