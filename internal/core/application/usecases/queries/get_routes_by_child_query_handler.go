package queries

import (
	"context"

	"careplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesByChildQueryHandler lists a child's routes, newest first.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRoutesByChildQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesByChildQueryHandler creates a handler for child route listing queries.
// Requires a GORM database connection for query execution.
func NewGetRoutesByChildQueryHandler(db *gorm.DB) GetRoutesByChildQueryHandler {
	return GetRoutesByChildQueryHandler{db: db}
}

// Handle executes the query and returns the child's routes ordered by
// creation time descending. A child with no routes yields an empty list.
func (h GetRoutesByChildQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesByChildQuery,
) ([]GetRoutesByChildQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetRoutesByChildQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.lead_specialist_id,
			r.title,
			r.status,
			r.plan_horizon_weeks,
			r.start_date,
			r.end_date,
			r.created_at,
			(SELECT COUNT(*) FROM route_goals g WHERE g.route_id = r.id),
			(SELECT COUNT(*) FROM route_phases p WHERE p.route_id = r.id)
		FROM routes r
		WHERE r.child_id = ?
		ORDER BY r.created_at DESC
	`, query.ChildID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetRoutesByChildQueryResponse
		var id, leadSpecialistID uuid.UUID

		err = rows.Scan(
			&id,
			&leadSpecialistID,
			&response.Title,
			&response.Status,
			&response.PlanHorizonWeeks,
			&response.StartDate,
			&response.EndDate,
			&response.CreatedAt,
			&response.GoalCount,
			&response.PhaseCount,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		response.LeadSpecialistID, err = kernel.UUIDFromBytes(leadSpecialistID[:])
		if err != nil {
			return nil, err
		}

		routes = append(routes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
