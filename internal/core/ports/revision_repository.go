package ports

import (
	"context"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"
)

// RevisionRepository defines the persistence contract for the append-only
// revision history. Records are inserted and read, never updated or deleted.
type RevisionRepository interface {
	// Add appends a revision record. The record's version must have been
	// obtained from NextVersion inside the same transaction.
	Add(ctx context.Context, record *revision.Record) error

	// NextVersion computes max(version)+1 for the route, defaulting to 1
	// when the route has no records yet. Must run inside the same
	// transaction as the subsequent Add so concurrent writers cannot
	// compute the same version; the lifecycle engine guarantees this by
	// holding the route row lock across both calls.
	NextVersion(ctx context.Context, routeID kernel.UUID) (int, error)

	// GetByRoute returns all revision records for the route ordered by
	// version descending.
	GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*revision.Record, error)
}
