package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/revision"
)

// ArchiveRouteCommandHandler handles archiving of finished routes.
// Archiving is recorded in the revision history but emits no outbox event.
type ArchiveRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewArchiveRouteCommandHandler creates a handler for route archive operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewArchiveRouteCommandHandler(uowFactory RouteUoWFactory) ArchiveRouteCommandHandler {
	return ArchiveRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route archive command.
func (h ArchiveRouteCommandHandler) Handle(ctx context.Context, cmd ArchiveRouteCommand) error {
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
	changes, err := aggregate.Archive(now)
	if err != nil {
		return err
	}

	return persistRouteMutation(ctx, uow, routeMutation{
		aggregate: aggregate,
		payload:   revision.NewTransitionPayload(revision.KindArchived, changes),
		actorID:   cmd.ActorID(),
		reason:    transitionReason(cmd.Reason(), "route archived"),
		now:       now,
	})
}
