package queries

import (
	"context"
	"encoding/json"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteHistoryQueryHandler reads revision records straight from the
// database, bypassing the aggregate. Uses direct SQL for optimal read
// performance in the CQRS pattern.
type GetRouteHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteHistoryQueryHandler creates a handler for history retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetRouteHistoryQueryHandler(db *gorm.DB) GetRouteHistoryQueryHandler {
	return GetRouteHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the route's revisions ordered by
// version descending. An unknown route yields an empty history, not an error.
func (h GetRouteHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRouteHistoryQuery,
) ([]GetRouteHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	revisions := make([]GetRouteHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_id,
			version,
			payload,
			actor_id,
			reason,
			created_at
		FROM route_revisions
		WHERE route_id = ?
		ORDER BY version DESC
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetRouteHistoryQueryResponse
		var id, routeID, actorID uuid.UUID
		var payload []byte

		err = rows.Scan(
			&id,
			&routeID,
			&record.Version,
			&payload,
			&actorID,
			&record.Reason,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		record.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		record.RouteID, err = kernel.UUIDFromBytes(routeID[:])
		if err != nil {
			return nil, err
		}
		record.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}

		var revisionPayload revision.Payload
		if err = json.Unmarshal(payload, &revisionPayload); err != nil {
			return nil, err
		}
		record.Payload = revisionPayload

		revisions = append(revisions, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return revisions, nil
}
