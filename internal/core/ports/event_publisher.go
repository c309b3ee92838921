package ports

import (
	"context"

	"careplan/internal/core/domain/model/outbox"
)

// EventPublisher delivers a single outbox entry to subscribers. It is the
// seam between the relay and whatever transport carries the events; the
// relay treats a returned error as a failed attempt and records it on the
// entry. Implementations must tolerate redelivery, since the outbox is an
// at-least-once channel.
type EventPublisher interface {
	Publish(ctx context.Context, entry *outbox.Entry) error
}
