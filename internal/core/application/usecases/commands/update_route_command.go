package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"
	"careplan/internal/pkg/guard"
)

var (
	ErrUpdateRouteCommandIsNotConstructed = errors.New(
		"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
	)
)

// UpdateRouteCommand represents a partial update of a route's descriptive
// fields. Only fields present in the patch are applied; fields whose value
// does not actually change are ignored.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	patch   route.UpdatePatch
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a command to apply a partial update to a route.
// Validates the identifiers and rejects an empty title when one is provided;
// an entirely empty patch is allowed and results in a no-op.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	actorID kernel.UUID,
	patch route.UpdatePatch,
) (UpdateRouteCommand, error) {
	updateCommand := UpdateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setRouteID(routeID),
		updateCommand.setActorID(actorID),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateRouteCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to update.
func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Patch returns the set of fields to apply.
func (c UpdateRouteCommand) Patch() route.UpdatePatch {
	return c.patch
}

// ActorID returns the user the operation is attributed to.
func (c UpdateRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *UpdateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *UpdateRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateRouteCommand) setPatch(patch route.UpdatePatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if patch.LeadSpecialistID != nil {
		if err := patch.LeadSpecialistID.Validate(); err != nil {
			return err
		}
	}
	c.patch = patch
	return nil
}
