package commands_test

import (
	"testing"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddRouteGoalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := draftRoute(t, kernel.NewUUID())
	cmd, err := commands.NewAddRouteGoalCommand(
		aggregate.ID(), kernel.NewUUID(), kernel.NewUUID(), "Produce two-word phrases", 1,
	)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("NextVersion", ctx, aggregate.ID()).Return(2, nil).Once(),
		revisionRepo.On("Add", ctx, mock.AnythingOfType("*revision.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRouteGoalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.Goals(), 1)
	assert.Equal(t, "Produce two-word phrases", aggregate.Goals()[0].Title())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "OutboxRepository")

	record := revisionRepo.Calls[1].Arguments.Get(1).(*revision.Record)
	assert.Equal(t, revision.KindUpdated, record.Payload().Kind)
	require.NotNil(t, record.Payload().Snapshot)
	assert.Equal(t, 1, record.Payload().Snapshot.GoalCount)
}

func TestAddRouteGoalCommandHandler_Handle_DuplicateGoalConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := draftRoute(t, kernel.NewUUID())
	goalID := kernel.NewUUID()
	firstCmd, err := commands.NewAddRouteGoalCommand(
		aggregate.ID(), goalID, kernel.NewUUID(), "Produce two-word phrases", 1,
	)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockRouteUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("RouteRepository").Return(routeRepo)
	uow.On("RevisionRepository").Return(revisionRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	routeRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil)
	routeRepo.On("Update", ctx, aggregate).Return(nil)
	revisionRepo.On("NextVersion", ctx, aggregate.ID()).Return(2, nil)
	revisionRepo.On("Add", ctx, mock.AnythingOfType("*revision.Record")).Return(nil)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAddRouteGoalCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, firstCmd))

	secondCmd, err := commands.NewAddRouteGoalCommand(
		aggregate.ID(), goalID, kernel.NewUUID(), "Follow two-step instructions", 2,
	)
	require.NoError(t, err)

	err = h.Handle(ctx, secondCmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Len(t, aggregate.Goals(), 1)
}
