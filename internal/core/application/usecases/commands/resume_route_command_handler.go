package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
)

// ResumeRouteCommandHandler handles resuming of a paused route.
// Runs the same active-route conflict check as activation so a child never
// ends up with two routes in work. Resuming emits no outbox event.
type ResumeRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewResumeRouteCommandHandler creates a handler for route resume operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewResumeRouteCommandHandler(uowFactory RouteUoWFactory) ResumeRouteCommandHandler {
	return ResumeRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route resume command.
func (h ResumeRouteCommandHandler) Handle(ctx context.Context, cmd ResumeRouteCommand) error {
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
	changes, err := aggregate.Resume(now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewTransitionPayload(revision.KindResumed, changes),
		actorID:   cmd.ActorID(),
		reason:    transitionReason(cmd.Reason(), "route resumed"),
		now:       now,
	})
}
