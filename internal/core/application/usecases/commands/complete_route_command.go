package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrCompleteRouteCommandIsNotConstructed = errors.New(
		"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
	)
)

// CompleteRouteCommand represents a request to finish an active or paused
// route. Completion is blocked while the route still has open assignments.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete a route.
// The reason is optional free text kept in the audit trail.
func NewCompleteRouteCommand(routeID kernel.UUID, actorID kernel.UUID, reason string) (CompleteRouteCommand, error) {
	command := CompleteRouteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setActorID(actorID),
	); err != nil {
		return CompleteRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to complete.
func (c CompleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ActorID returns the user the operation is attributed to.
func (c CompleteRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional operator-supplied reason.
func (c CompleteRouteCommand) Reason() string {
	return c.reason
}

func (c *CompleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CompleteRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
