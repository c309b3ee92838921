package commands_test

import (
	"testing"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

func draftRoute(t *testing.T, childID kernel.UUID) *route.Route {
	t.Helper()

	r, err := route.NewRoute(
		kernel.NewUUID(), childID, kernel.NewUUID(), nil,
		"Speech therapy plan", "weekly sessions", 12, time.Now().UTC(),
	)
	require.NoError(t, err)
	return r
}

func draftRouteWithGoal(t *testing.T, childID kernel.UUID) *route.Route {
	t.Helper()

	r := draftRoute(t, childID)
	goal, err := route.NewGoal(kernel.NewUUID(), "Produce two-word phrases", 1)
	require.NoError(t, err)
	_, err = r.AddGoal(goal, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func activeRoute(t *testing.T, childID kernel.UUID) *route.Route {
	t.Helper()

	r := draftRouteWithGoal(t, childID)
	_, err := r.Activate(time.Now().UTC())
	require.NoError(t, err)
	return r
}

func pausedRoute(t *testing.T, childID kernel.UUID) *route.Route {
	t.Helper()

	r := activeRoute(t, childID)
	_, err := r.Pause(time.Now().UTC())
	require.NoError(t, err)
	return r
}
