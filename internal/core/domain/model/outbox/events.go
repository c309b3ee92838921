package outbox

import (
	"encoding/json"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
)

// Event payloads form a closed set with one explicit schema per catalogue
// event, keeping the announcements machine-checkable instead of free-form
// maps. Every payload carries the acting user and the occurrence instant.

// RouteCreatedPayload is the payload of a route.created event.
type RouteCreatedPayload struct {
	RouteID          string    `json:"routeId"`
	ChildID          string    `json:"childId"`
	LeadSpecialistID string    `json:"leadSpecialistId"`
	Title            string    `json:"title"`
	ActorID          string    `json:"actorId"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// RouteActivatedPayload is the payload of a route.activated event.
type RouteActivatedPayload struct {
	RouteID    string    `json:"routeId"`
	ChildID    string    `json:"childId"`
	StartDate  time.Time `json:"startDate"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RouteCompletedPayload is the payload of a route.completed event.
type RouteCompletedPayload struct {
	RouteID    string    `json:"routeId"`
	ChildID    string    `json:"childId"`
	EndDate    time.Time `json:"endDate"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewRouteCreatedEntry builds the pending entry announcing route creation.
func NewRouteCreatedEntry(id kernel.UUID, r *route.Route, actorID kernel.UUID, now time.Time) (*Entry, error) {
	payload, err := json.Marshal(RouteCreatedPayload{
		RouteID:          r.ID().String(),
		ChildID:          r.ChildID().String(),
		LeadSpecialistID: r.LeadSpecialistID().String(),
		Title:            r.Title(),
		ActorID:          actorID.String(),
		OccurredAt:       now,
	})
	if err != nil {
		return nil, err
	}

	return NewEntry(id, r.ID(), EventRouteCreated, payload, now)
}

// NewRouteActivatedEntry builds the pending entry announcing activation.
// The route must already carry its start date.
func NewRouteActivatedEntry(id kernel.UUID, r *route.Route, actorID kernel.UUID, now time.Time) (*Entry, error) {
	var startDate time.Time
	if r.StartDate() != nil {
		startDate = *r.StartDate()
	}

	payload, err := json.Marshal(RouteActivatedPayload{
		RouteID:    r.ID().String(),
		ChildID:    r.ChildID().String(),
		StartDate:  startDate,
		ActorID:    actorID.String(),
		OccurredAt: now,
	})
	if err != nil {
		return nil, err
	}

	return NewEntry(id, r.ID(), EventRouteActivated, payload, now)
}

// NewRouteCompletedEntry builds the pending entry announcing completion.
// The route must already carry its end date.
func NewRouteCompletedEntry(id kernel.UUID, r *route.Route, actorID kernel.UUID, now time.Time) (*Entry, error) {
	var endDate time.Time
	if r.EndDate() != nil {
		endDate = *r.EndDate()
	}

	payload, err := json.Marshal(RouteCompletedPayload{
		RouteID:    r.ID().String(),
		ChildID:    r.ChildID().String(),
		EndDate:    endDate,
		ActorID:    actorID.String(),
		OccurredAt: now,
	})
	if err != nil {
		return nil, err
	}

	return NewEntry(id, r.ID(), EventRouteCompleted, payload, now)
}
