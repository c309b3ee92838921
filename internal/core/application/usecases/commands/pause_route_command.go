package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrPauseRouteCommandIsNotConstructed = errors.New(
		"PauseRouteCommand must be created via NewPauseRouteCommand constructor",
	)
)

// PauseRouteCommand represents a request to suspend work on an active route,
// for example while the child is unavailable for an extended period.
type PauseRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewPauseRouteCommand creates a command to pause a route.
// The reason is optional free text kept in the audit trail.
func NewPauseRouteCommand(routeID kernel.UUID, actorID kernel.UUID, reason string) (PauseRouteCommand, error) {
	command := PauseRouteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setActorID(actorID),
	); err != nil {
		return PauseRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseRouteCommand) Validate() error {
	return c.guard.Validate(ErrPauseRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to pause.
func (c PauseRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ActorID returns the user the operation is attributed to.
func (c PauseRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional operator-supplied reason.
func (c PauseRouteCommand) Reason() string {
	return c.reason
}

func (c *PauseRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *PauseRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
