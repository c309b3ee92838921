package commands_test

import (
	"testing"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivateRouteCommand_ValidInput(t *testing.T) {
	routeID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewActivateRouteCommand(routeID, actorID, "ready to start")

	require.NoError(t, err)
	assert.True(t, cmd.RouteID().IsEqual(routeID))
	assert.True(t, cmd.ActorID().IsEqual(actorID))
	assert.Equal(t, "ready to start", cmd.Reason())
	assert.NoError(t, cmd.Validate())
}

func TestNewActivateRouteCommand_EmptyReasonAllowed(t *testing.T) {
	cmd, err := commands.NewActivateRouteCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewActivateRouteCommand_InvalidRouteID(t *testing.T) {
	_, err := commands.NewActivateRouteCommand(kernel.UUID{}, kernel.NewUUID(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewActivateRouteCommand_InvalidActorID(t *testing.T) {
	_, err := commands.NewActivateRouteCommand(kernel.NewUUID(), kernel.UUID{}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestActivateRouteCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ActivateRouteCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActivateRouteCommandIsNotConstructed)
}
