package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
)

// PauseRouteCommandHandler handles pausing of an active route.
// Pausing is recorded in the revision history but emits no outbox event.
type PauseRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewPauseRouteCommandHandler creates a handler for route pause operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewPauseRouteCommandHandler(uowFactory RouteUoWFactory) PauseRouteCommandHandler {
	return PauseRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route pause command.
func (h PauseRouteCommandHandler) Handle(ctx context.Context, cmd PauseRouteCommand) error {
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

	now := time.Now().UTC()
	changes, err := aggregate.Pause(now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewTransitionPayload(revision.KindPaused, changes),
		actorID:   cmd.ActorID(),
		reason:    transitionReason(cmd.Reason(), "route paused"),
		now:       now,
	})
}
