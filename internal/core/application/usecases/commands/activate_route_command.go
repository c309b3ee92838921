package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrActivateRouteCommandIsNotConstructed = errors.New(
		"ActivateRouteCommand must be created via NewActivateRouteCommand constructor",
	)
)

// ActivateRouteCommand represents a request to put a draft route into work.
// Activation stamps the start date and makes the route the child's single
// active plan.
//
// Example:
//
//	cmd, err := NewActivateRouteCommand(routeID, actorID, "")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewActivateRouteCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to activate route: %w", err)
//	}
type ActivateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewActivateRouteCommand creates a command to activate a route.
// The reason is optional free text kept in the audit trail.
func NewActivateRouteCommand(routeID kernel.UUID, actorID kernel.UUID, reason string) (ActivateRouteCommand, error) {
	command := ActivateRouteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setActorID(actorID),
	); err != nil {
		return ActivateRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateRouteCommand) Validate() error {
	return c.guard.Validate(ErrActivateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to activate.
func (c ActivateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ActorID returns the user the operation is attributed to.
func (c ActivateRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional operator-supplied reason.
func (c ActivateRouteCommand) Reason() string {
	return c.reason
}

func (c *ActivateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ActivateRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
