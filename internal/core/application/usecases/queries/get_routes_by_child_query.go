package queries

import (
	"errors"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrGetRoutesByChildQueryIsNotConstructed = errors.New(
		"GetRoutesByChildQuery must be created via NewGetRoutesByChildQuery constructor",
	)
)

// GetRoutesByChildQuery retrieves all routes that exist for one child,
// across every lifecycle status. Used by specialists to review the child's
// current plan alongside past and draft ones.
type GetRoutesByChildQuery struct { //nolint:recvcheck //using for validation
	childID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRoutesByChildQuery creates a query for a child's routes.
// Validates that the child ID is a constructed UUID.
func NewGetRoutesByChildQuery(childID kernel.UUID) (GetRoutesByChildQuery, error) {
	query := GetRoutesByChildQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setChildID(childID); err != nil {
		return GetRoutesByChildQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesByChildQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesByChildQueryIsNotConstructed)
}

// ChildID returns the identifier of the child whose routes are requested.
func (q GetRoutesByChildQuery) ChildID() kernel.UUID {
	return q.childID
}

func (q *GetRoutesByChildQuery) setChildID(childID kernel.UUID) error {
	if err := childID.Validate(); err != nil {
		return err
	}

	q.childID = childID
	return nil
}

// GetRoutesByChildQueryResponse represents one route in the read model.
// Goal and phase counts are included so list views can show plan size
// without loading the aggregates.
type GetRoutesByChildQueryResponse struct {
	ID               kernel.UUID
	LeadSpecialistID kernel.UUID
	Title            string
	Status           string
	PlanHorizonWeeks int
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	GoalCount        int
	PhaseCount       int
}
