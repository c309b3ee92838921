package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/guard"
)

var (
	ErrResumeRouteCommandIsNotConstructed = errors.New(
		"ResumeRouteCommand must be created via NewResumeRouteCommand constructor",
	)
)

// ResumeRouteCommand represents a request to put a paused route back into
// work. Resuming re-checks the single-active-route rule because another
// route may have been activated for the child in the meantime.
type ResumeRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewResumeRouteCommand creates a command to resume a paused route.
// The reason is optional free text kept in the audit trail.
func NewResumeRouteCommand(routeID kernel.UUID, actorID kernel.UUID, reason string) (ResumeRouteCommand, error) {
	command := ResumeRouteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setActorID(actorID),
	); err != nil {
		return ResumeRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeRouteCommand) Validate() error {
	return c.guard.Validate(ErrResumeRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to resume.
func (c ResumeRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ActorID returns the user the operation is attributed to.
func (c ResumeRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the optional operator-supplied reason.
func (c ResumeRouteCommand) Reason() string {
	return c.reason
}

func (c *ResumeRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ResumeRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
