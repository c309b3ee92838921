package commands

import (
	"context"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
)

// routeMutation is the commit bundle of one lifecycle engine operation: the
// mutated aggregate, the revision payload describing the change, and zero or
// one outbox entry announcing it. Bundling the triple into one value written
// by one function is what prevents the "write state, write history, write
// event" steps from ever being split across transactions.
type routeMutation struct {
	isNew     bool
	aggregate *route.Route
	payload   revision.Payload
	actorID   kernel.UUID
	reason    string
	entry     *outbox.Entry
	now       time.Time
}

// persistRouteMutation writes the commit bundle and commits the transaction.
// The caller must have begun the transaction and performed its precondition
// checks under the locks that transaction holds. Either the route, the
// revision record, and the outbox entry all commit, or none do.
func persistRouteMutation(ctx context.Context, uow RouteUoW, m routeMutation) error {
	routeRepo := uow.RouteRepository()
	if m.isNew {
		if err := routeRepo.Add(ctx, m.aggregate); err != nil {
			return err
		}
	} else {
		if err := routeRepo.Update(ctx, m.aggregate); err != nil {
			return err
		}
	}

	revisionRepo := uow.RevisionRepository()
	version, err := revisionRepo.NextVersion(ctx, m.aggregate.ID())
	if err != nil {
		return err
	}

	record, err := revision.NewRecord(
		kernel.NewUUID(), m.aggregate.ID(), version, m.payload, m.actorID, m.reason, m.now,
	)
	if err != nil {
		return err
	}

	if err = revisionRepo.Add(ctx, record); err != nil {
		return err
	}

	if m.entry != nil {
		if err = uow.OutboxRepository().Add(ctx, m.entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
