package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
)

// UpdateRouteCommandHandler applies partial field updates to a route.
// When at least one field actually changes it appends a revision carrying
// the old/new values and a post-update snapshot; an update that changes
// nothing writes nothing and returns the route as stored.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteCommandHandler creates a handler for route update operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route update command and returns the route in its
// post-update state. No outbox event is emitted for plain field updates,
// only lifecycle transitions are announced.
func (h UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	changes, err := aggregate.ApplyUpdate(cmd.Patch(), now)
	if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return aggregate, nil
	}

	err = persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewUpdatedPayload(changes, aggregate.Snapshot()),
		actorID:   cmd.ActorID(),
		reason:    "route updated",
		now:       now,
	})
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}
