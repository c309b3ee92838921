package ports

import (
	"context"

	"careplan/internal/core/domain/model/kernel"
)

// AssignmentCounter queries the scheduling collaborator for assignments
// referencing a route. The lifecycle engine consults it before completing a
// route: completion is blocked while any assignment is still scheduled or
// in progress. This core never writes assignments.
type AssignmentCounter interface {
	// CountOpen returns the number of assignments for the route whose
	// status is scheduled or in_progress.
	CountOpen(ctx context.Context, routeID kernel.UUID) (int, error)
}
