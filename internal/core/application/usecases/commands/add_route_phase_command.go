package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrAddRoutePhaseCommandIsNotConstructed = errors.New(
		"AddRoutePhaseCommand must be created via NewAddRoutePhaseCommand constructor",
	)
)

// AddRoutePhaseCommand represents a request to add a plan phase to a route.
type AddRoutePhaseCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	phaseID  kernel.UUID
	actorID  kernel.UUID
	title    string
	position int

	guard guard.ConstructorGuard
}

// NewAddRoutePhaseCommand creates a command to add a phase to a route.
// Title and position validation is left to the Phase value object.
func NewAddRoutePhaseCommand(
	routeID kernel.UUID,
	phaseID kernel.UUID,
	actorID kernel.UUID,
	title string,
	position int,
) (AddRoutePhaseCommand, error) {
	command := AddRoutePhaseCommand{
		title:    title,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setPhaseID(phaseID),
		command.setActorID(actorID),
	); err != nil {
		return AddRoutePhaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRoutePhaseCommand) Validate() error {
	return c.guard.Validate(ErrAddRoutePhaseCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to add the phase to.
func (c AddRoutePhaseCommand) RouteID() kernel.UUID {
	return c.routeID
}

// PhaseID returns the identifier for the new phase.
func (c AddRoutePhaseCommand) PhaseID() kernel.UUID {
	return c.phaseID
}

// ActorID returns the user the operation is attributed to.
func (c AddRoutePhaseCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Title returns the phase title.
func (c AddRoutePhaseCommand) Title() string {
	return c.title
}

// Position returns the phase's ordering position within the route.
func (c AddRoutePhaseCommand) Position() int {
	return c.position
}

func (c *AddRoutePhaseCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AddRoutePhaseCommand) setPhaseID(phaseID kernel.UUID) error {
	if err := phaseID.Validate(); err != nil {
		return err
	}

	c.phaseID = phaseID
	return nil
}

func (c *AddRoutePhaseCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
