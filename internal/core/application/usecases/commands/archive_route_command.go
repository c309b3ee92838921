package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrArchiveRouteCommandIsNotConstructed = errors.New(
		"ArchiveRouteCommand must be created via NewArchiveRouteCommand constructor",
	)
)

// ArchiveRouteCommand represents a housekeeping request to archive a
// completed or paused route. Archived routes are terminal and read-only.
type ArchiveRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewArchiveRouteCommand creates a command to archive a route.
// The reason is optional free text kept in the audit trail.
func NewArchiveRouteCommand(routeID kernel.UUID, actorID kernel.UUID, reason string) (ArchiveRouteCommand, error) {
	command := ArchiveRouteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setActorID(actorID),
	); err != nil {
		return ArchiveRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveRouteCommand) Validate() error {
	return c.guard.Validate(ErrArchiveRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to archive.
func (c ArchiveRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ActorID returns the user the operation is attributed to.
func (c ArchiveRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional operator-supplied reason.
func (c ArchiveRouteCommand) Reason() string {
	return c.reason
}

func (c *ArchiveRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ArchiveRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
