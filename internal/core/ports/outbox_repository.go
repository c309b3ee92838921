package ports

import (
	"context"

	"careplan/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for the transactional
// outbox. The lifecycle engine only ever calls Add, inside the mutation's
// transaction; GetPending and Update exist for the relay.
type OutboxRepository interface {
	// Add inserts a pending entry.
	Add(ctx context.Context, entry *outbox.Entry) error

	// GetPending returns up to limit pending entries, oldest first, so
	// per-aggregate delivery follows creation order.
	GetPending(ctx context.Context, limit int) ([]*outbox.Entry, error)

	// Update persists the relay's status transition (processed or failed)
	// for an existing entry.
	Update(ctx context.Context, entry *outbox.Entry) error
}
