package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
)

// AddRouteGoalCommandHandler adds a goal to an existing route.
// The addition is recorded as an update revision; no outbox event is
// emitted for content changes.
type AddRouteGoalCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewAddRouteGoalCommandHandler creates a handler for goal addition operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewAddRouteGoalCommandHandler(uowFactory RouteUoWFactory) AddRouteGoalCommandHandler {
	return AddRouteGoalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the goal addition command.
func (h AddRouteGoalCommandHandler) Handle(ctx context.Context, cmd AddRouteGoalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	goal, err := route.NewGoal(cmd.GoalID(), cmd.Title(), cmd.Position())
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
	changes, err := aggregate.AddGoal(goal, now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewUpdatedPayload(changes, aggregate.Snapshot()),
		actorID:   cmd.ActorID(),
		reason:    "goal added",
		now:       now,
	})
}
