package commands_test

import (
	"testing"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRouteCommand_ValidInput(t *testing.T) {
	routeID := kernel.NewUUID()
	childID := kernel.NewUUID()
	specialistID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	templateID := kernel.NewUUID()

	cmd, err := commands.NewCreateRouteCommand(
		routeID, childID, specialistID, actorID, &templateID,
		"Speech therapy plan", "weekly sessions", 12,
	)

	require.NoError(t, err)
	assert.True(t, cmd.RouteID().IsEqual(routeID))
	assert.True(t, cmd.ChildID().IsEqual(childID))
	assert.True(t, cmd.LeadSpecialistID().IsEqual(specialistID))
	assert.True(t, cmd.ActorID().IsEqual(actorID))
	require.NotNil(t, cmd.TemplateID())
	assert.True(t, cmd.TemplateID().IsEqual(templateID))
	assert.Equal(t, "Speech therapy plan", cmd.Title())
	assert.Equal(t, "weekly sessions", cmd.Summary())
	assert.Equal(t, 12, cmd.PlanHorizonWeeks())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateRouteCommand_NoTemplate(t *testing.T) {
	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"Speech therapy plan", "", 0,
	)

	require.NoError(t, err)
	assert.Nil(t, cmd.TemplateID())
	assert.Equal(t, 0, cmd.PlanHorizonWeeks())
}

func TestNewCreateRouteCommand_InvalidRouteID(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"Speech therapy plan", "", 12,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateRouteCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"", "", 12,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateRouteCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(
		kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil,
		"", "", 12,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateRouteCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateRouteCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateRouteCommandIsNotConstructed)
}
