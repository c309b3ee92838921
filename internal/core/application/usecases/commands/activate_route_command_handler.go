package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
)

// ActivateRouteCommandHandler handles route activation.
// Enforces the single-active-route rule: a child may have at most one
// active route, and two concurrent activations for the same child must
// serialize so that only one of them commits.
type ActivateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewActivateRouteCommandHandler creates a handler for route activation operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewActivateRouteCommandHandler(uowFactory RouteUoWFactory) ActivateRouteCommandHandler {
	return ActivateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route activation command.
// Locks the route row and the child scope, re-checks the active-route
// precondition against committed state, applies the transition and writes
// the route, its revision and the route.activated outbox entry atomically.
func (h ActivateRouteCommandHandler) Handle(ctx context.Context, cmd ActivateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = routeRepo.LockChild(ctx, aggregate.ChildID()); err != nil {
		return err
	}

	activeRoute, err := routeRepo.FindActiveByChild(ctx, aggregate.ChildID())
	if err != nil {
		return err
	}
	if activeRoute != nil && !activeRoute.ID().IsEqual(aggregate.ID()) {
		return activeRouteConflict(aggregate.ChildID(), activeRoute.ID())
	}

	now := time.Now().UTC()
	changes, err := aggregate.Activate(now)
	if err != nil {
		return err
	}

	entry, err := outbox.NewRouteActivatedEntry(kernel.NewUUID(), aggregate, cmd.ActorID(), now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewTransitionPayload(revision.KindActivated, changes),
		actorID:   cmd.ActorID(),
		reason:    transitionReason(cmd.Reason(), "route activated"),
		entry:     entry,
		now:       now,
	})
}

// transitionReason falls back to the operation's default audit text
// when the caller supplied no reason of their own.
func transitionReason(supplied, fallback string) string {
	if supplied != "" {
		return supplied
	}

	return fallback
}
