package commands

import (
	"context"
	"fmt"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/pkg/errs"
)

// CompleteRouteCommandHandler handles route completion.
// A route with assignments still scheduled or in progress cannot be
// completed; the caller has to resolve them first.
type CompleteRouteCommandHandler struct {
	uowFactory CompletionUoWFactory
}

// NewCompleteRouteCommandHandler creates a handler for route completion operations.
// Requires a CompletionUoWFactory so the open-assignment check runs in the
// same transaction as the write.
func NewCompleteRouteCommandHandler(uowFactory CompletionUoWFactory) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route completion command.
// Locks the route row, counts open assignments within the transaction,
// applies the transition and writes the route, its revision and the
// route.completed outbox entry atomically.
func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
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

	openAssignments, err := uow.Assignments().CountOpen(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if openAssignments > 0 {
		return errs.NewConflictError(
			"routeId",
			fmt.Sprintf("route has %d open assignments", openAssignments),
		)
	}

	now := time.Now().UTC()
	changes, err := aggregate.Complete(now)
	if err != nil {
		return err
	}

	entry, err := outbox.NewRouteCompletedEntry(kernel.NewUUID(), aggregate, cmd.ActorID(), now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewTransitionPayload(revision.KindCompleted, changes),
		actorID:   cmd.ActorID(),
		reason:    transitionReason(cmd.Reason(), "route completed"),
		entry:     entry,
		now:       now,
	})
}
