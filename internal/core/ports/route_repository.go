package ports

import (
	"context"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates,
// including the locking primitives the lifecycle engine needs to enforce the
// single-active-route-per-child invariant under concurrency.
type RouteRepository interface {
	// Add persists a new route aggregate together with its owned goals
	// and phases.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate, including
	// goals and phases appended since the last save.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetForUpdate retrieves a route and locks its row for the duration of
	// the current transaction, serializing concurrent mutations of the
	// same route.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// LockChild acquires a transaction-scoped lock on the child's route
	// set. Two transactions locking the same child serialize, so the
	// single-active-route precondition re-evaluated after the lock
	// observes any concurrent commit. Must be called inside an open
	// transaction.
	LockChild(ctx context.Context, childID kernel.UUID) error

	// FindActiveByChild returns the child's currently active route, or
	// nil when the child has none.
	FindActiveByChild(ctx context.Context, childID kernel.UUID) (*route.Route, error)
}
