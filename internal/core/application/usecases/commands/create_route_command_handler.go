package commands

import (
	"context"
	"fmt"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"
)

// CreateRouteCommandHandler handles the business logic for route creation.
// Creates new routes in draft status and records the initial revision and
// the route.created outbox entry in the same transaction.
//
// Example:
//
//	handler := NewCreateRouteCommandHandler(uowFactory)
//	routeID := kernel.NewUUID()
//	cmd, _ := NewCreateRouteCommand(routeID, childID, specialistID, actorID, nil, "Speech therapy plan", "", 12)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("route creation failed: %w", err)
//	}
//	// Route is now a draft and can be filled with goals and phases
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
// Takes a per-child lock so that creation cannot race with activation of
// another route for the same child, rejects the request with a conflict
// when the child already has an active route, then persists the draft
// route together with revision 1 and a route.created outbox entry.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
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
	if err := routeRepo.LockChild(ctx, cmd.ChildID()); err != nil {
		return err
	}

	activeRoute, err := routeRepo.FindActiveByChild(ctx, cmd.ChildID())
	if err != nil {
		return err
	}
	if activeRoute != nil {
		return activeRouteConflict(cmd.ChildID(), activeRoute.ID())
	}

	now := time.Now().UTC()
	newRoute, err := route.NewRoute(
		cmd.RouteID(),
		cmd.ChildID(),
		cmd.LeadSpecialistID(),
		cmd.TemplateID(),
		cmd.Title(),
		cmd.Summary(),
		cmd.PlanHorizonWeeks(),
		now,
	)
	if err != nil {
		return err
	}

	entry, err := outbox.NewRouteCreatedEntry(kernel.NewUUID(), newRoute, cmd.ActorID(), now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		isNew:     true,
		aggregate: newRoute,
		payload:   revision.NewCreatedPayload(newRoute.Snapshot()),
		actorID:   cmd.ActorID(),
		reason:    "route created",
		entry:     entry,
		now:       now,
	})
}

func activeRouteConflict(childID kernel.UUID, activeRouteID kernel.UUID) error {
	return errs.NewConflictError(
		"childId",
		fmt.Sprintf("child %s already has active route %s", childID, activeRouteID),
	)
}
