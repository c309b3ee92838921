// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/pkg/guard"
)

var (
	ErrGetRouteHistoryQueryIsNotConstructed = errors.New(
		"GetRouteHistoryQuery must be created via NewGetRouteHistoryQuery constructor",
	)
)

// GetRouteHistoryQuery retrieves the full revision history of one route,
// newest first. The history is the authoritative audit trail: every
// committed mutation of the route appears here exactly once.
//
// Example:
//
//	query, err := NewGetRouteHistoryQuery(routeID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	history, err := NewGetRouteHistoryQueryHandler(db).Handle(ctx, query)
//	for _, rev := range history {
//	    fmt.Printf("v%d %s by %s\n", rev.Version, rev.Payload.Kind, rev.ActorID)
//	}
type GetRouteHistoryQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteHistoryQuery creates a query for one route's revision history.
// Validates that the route ID is a constructed UUID.
func NewGetRouteHistoryQuery(routeID kernel.UUID) (GetRouteHistoryQuery, error) {
	query := GetRouteHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRouteID(routeID); err != nil {
		return GetRouteHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteHistoryQueryIsNotConstructed)
}

// RouteID returns the identifier of the route whose history is requested.
func (q GetRouteHistoryQuery) RouteID() kernel.UUID {
	return q.routeID
}

func (q *GetRouteHistoryQuery) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	q.routeID = routeID
	return nil
}

// GetRouteHistoryQueryResponse represents one revision in the read model.
type GetRouteHistoryQueryResponse struct {
	ID        kernel.UUID
	RouteID   kernel.UUID
	Version   int
	Payload   revision.Payload
	ActorID   kernel.UUID
	Reason    string
	CreatedAt time.Time
}
