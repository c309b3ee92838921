package commands_test

import (
	"testing"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	childID := kernel.NewUUID()
	aggregate := draftRouteWithGoal(t, childID)
	cmd, err := commands.NewActivateRouteCommand(aggregate.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	revisionRepo := new(MockRevisionRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("LockChild", ctx, childID).Return(nil).Once(),
		routeRepo.On("FindActiveByChild", ctx, childID).Return(nil, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("NextVersion", ctx, aggregate.ID()).Return(2, nil).Once(),
		revisionRepo.On("Add", ctx, mock.AnythingOfType("*revision.Record")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", ctx, mock.AnythingOfType("*outbox.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	routeRepo.AssertExpectations(t)
	revisionRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, route.Active, aggregate.Status())
	require.NotNil(t, aggregate.StartDate())

	record := revisionRepo.Calls[1].Arguments.Get(1).(*revision.Record)
	assert.Equal(t, 2, record.Version())
	assert.Equal(t, revision.KindActivated, record.Payload().Kind)
	assert.Contains(t, record.Payload().Changes, "status")
	assert.Contains(t, record.Payload().Changes, "startDate")

	entry := outboxRepo.Calls[0].Arguments.Get(1).(*outbox.Entry)
	assert.Equal(t, outbox.EventRouteActivated, entry.EventName())
}

func TestActivateRouteCommandHandler_Handle_OtherRouteActiveConflict(t *testing.T) {
	ctx := t.Context()
	childID := kernel.NewUUID()
	aggregate := draftRouteWithGoal(t, childID)
	other := activeRoute(t, childID)
	cmd, err := commands.NewActivateRouteCommand(aggregate.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("LockChild", ctx, childID).Return(nil).Once(),
		routeRepo.On("FindActiveByChild", ctx, childID).Return(other, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, route.Draft, aggregate.Status())
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestActivateRouteCommandHandler_Handle_EmptyRoute(t *testing.T) {
	ctx := t.Context()
	childID := kernel.NewUUID()
	aggregate := draftRoute(t, childID)
	cmd, err := commands.NewActivateRouteCommand(aggregate.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("LockChild", ctx, childID).Return(nil).Once(),
		routeRepo.On("FindActiveByChild", ctx, childID).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, route.Draft, aggregate.Status())
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestActivateRouteCommandHandler_Handle_AlreadyActive(t *testing.T) {
	ctx := t.Context()
	childID := kernel.NewUUID()
	aggregate := activeRoute(t, childID)
	cmd, err := commands.NewActivateRouteCommand(aggregate.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("LockChild", ctx, childID).Return(nil).Once(),
		routeRepo.On("FindActiveByChild", ctx, childID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestActivateRouteCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewActivateRouteCommand(routeID, kernel.NewUUID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, routeID).
			Return(nil, errs.NewObjectNotFoundError("routeId", routeID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
