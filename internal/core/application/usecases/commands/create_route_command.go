package commands

import (
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
	"careplan/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
)

// CreateRouteCommand represents a request to create a new care-plan route
// for a child. The route starts in draft status; activation is a separate
// operation with its own preconditions.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID          kernel.UUID
	childID          kernel.UUID
	leadSpecialistID kernel.UUID
	templateID       *kernel.UUID
	title            string
	summary          string
	planHorizonWeeks int
	actorID          kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new draft route.
// Validates the identifiers and the title; the plan horizon range is
// enforced by the Route aggregate.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	childID kernel.UUID,
	leadSpecialistID kernel.UUID,
	actorID kernel.UUID,
	templateID *kernel.UUID,
	title string,
	summary string,
	planHorizonWeeks int,
) (CreateRouteCommand, error) {
	createCommand := CreateRouteCommand{
		summary:          summary,
		planHorizonWeeks: planHorizonWeeks,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setRouteID(routeID),
		createCommand.setChildID(childID),
		createCommand.setLeadSpecialistID(leadSpecialistID),
		createCommand.setActorID(actorID),
		createCommand.setTemplateID(templateID),
		createCommand.setTitle(title),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier the new route will be created under.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ChildID returns the identifier of the child the plan is for.
func (c CreateRouteCommand) ChildID() kernel.UUID {
	return c.childID
}

// LeadSpecialistID returns the identifier of the responsible specialist.
func (c CreateRouteCommand) LeadSpecialistID() kernel.UUID {
	return c.leadSpecialistID
}

// TemplateID returns the optional template reference.
func (c CreateRouteCommand) TemplateID() *kernel.UUID {
	return c.templateID
}

// Title returns the plan title.
func (c CreateRouteCommand) Title() string {
	return c.title
}

// Summary returns the optional free-text summary.
func (c CreateRouteCommand) Summary() string {
	return c.summary
}

// PlanHorizonWeeks returns the optional plan horizon, 0 when unset.
func (c CreateRouteCommand) PlanHorizonWeeks() int {
	return c.planHorizonWeeks
}

// ActorID returns the user the operation is attributed to.
func (c CreateRouteCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setChildID(childID kernel.UUID) error {
	if err := childID.Validate(); err != nil {
		return err
	}
	c.childID = childID
	return nil
}

func (c *CreateRouteCommand) setLeadSpecialistID(leadSpecialistID kernel.UUID) error {
	if err := leadSpecialistID.Validate(); err != nil {
		return err
	}
	c.leadSpecialistID = leadSpecialistID
	return nil
}

func (c *CreateRouteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateRouteCommand) setTemplateID(templateID *kernel.UUID) error {
	if templateID == nil {
		return nil
	}
	if err := templateID.Validate(); err != nil {
		return err
	}
	c.templateID = templateID
	return nil
}

func (c *CreateRouteCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
