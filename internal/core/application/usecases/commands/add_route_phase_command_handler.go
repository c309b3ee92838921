package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
)

// AddRoutePhaseCommandHandler adds a phase to an existing route.
// The addition is recorded as an update revision; no outbox event is
// emitted for content changes.
type AddRoutePhaseCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewAddRoutePhaseCommandHandler creates a handler for phase addition operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewAddRoutePhaseCommandHandler(uowFactory RouteUoWFactory) AddRoutePhaseCommandHandler {
	return AddRoutePhaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the phase addition command.
func (h AddRoutePhaseCommandHandler) Handle(ctx context.Context, cmd AddRoutePhaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	phase, err := route.NewPhase(cmd.PhaseID(), cmd.Title(), cmd.Position())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	changes, err := aggregate.AddPhase(phase, now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewUpdatedPayload(changes, aggregate.Snapshot()),
		actorID:   cmd.ActorID(),
		reason:    "phase added",
		now:       now,
	})
}
