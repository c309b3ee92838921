package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrAddRouteGoalCommandIsNotConstructed = errors.New(
		"AddRouteGoalCommand must be created via NewAddRouteGoalCommand constructor",
	)
)

// AddRouteGoalCommand represents a request to add a care goal to a route.
// A draft route needs at least one goal or phase before it can be activated.
//
// Example:
//
//	goalID := kernel.NewUUID()
//	cmd, err := NewAddRouteGoalCommand(routeID, goalID, actorID, "Produce two-word phrases", 1)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAddRouteGoalCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add goal: %w", err)
//	}
type AddRouteGoalCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	goalID   kernel.UUID
	actorID  kernel.UUID
	title    string
	position int

	guard guard.ConstructorGuard
}

// NewAddRouteGoalCommand creates a command to add a goal to a route.
// Title and position validation is left to the Goal value object.
func NewAddRouteGoalCommand(
	routeID kernel.UUID,
	goalID kernel.UUID,
	actorID kernel.UUID,
	title string,
	position int,
) (AddRouteGoalCommand, error) {
	command := AddRouteGoalCommand{
		title:    title,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setGoalID(goalID),
		command.setActorID(actorID),
	); err != nil {
		return AddRouteGoalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRouteGoalCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteGoalCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to add the goal to.
func (c AddRouteGoalCommand) RouteID() kernel.UUID {
	return c.routeID
}

// GoalID returns the identifier for the new goal.
func (c AddRouteGoalCommand) GoalID() kernel.UUID {
	return c.goalID
}

// ActorID returns the user the operation is attributed to.
func (c AddRouteGoalCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Title returns the goal title.
func (c AddRouteGoalCommand) Title() string {
	return c.title
}

// Position returns the goal's ordering position within the route.
func (c AddRouteGoalCommand) Position() int {
	return c.position
}

func (c *AddRouteGoalCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AddRouteGoalCommand) setGoalID(goalID kernel.UUID) error {
	if err := goalID.Validate(); err != nil {
		return err
	}

	c.goalID = goalID
	return nil
}

func (c *AddRouteGoalCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
