package route

import (
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
)

// Goal is a care objective owned by a route. Goals have no existence
// independent of their route and are cascaded with it. Only the attributes
// the lifecycle engine needs are modeled here; the full goal schema lives
// with the planning collaborator.
type Goal struct {
	id       kernel.UUID
	title    string
	position int
}

// NewGoal creates a goal with a valid identifier, a non-empty title, and a
// non-negative ordering position.
func NewGoal(id kernel.UUID, title string, position int) (Goal, error) {
	if err := id.Validate(); err != nil {
		return Goal{}, err
	}
	if title == "" {
		return Goal{}, errs.NewValueIsRequiredError("goal title")
	}
	if position < 0 {
		return Goal{}, errs.NewValueIsInvalidError("goal position")
	}

	return Goal{id: id, title: title, position: position}, nil
}

// RestoreGoal reconstructs a goal from persistence.
func RestoreGoal(id kernel.UUID, title string, position int) (Goal, error) {
	return NewGoal(id, title, position)
}

// ID returns the goal's unique identifier.
func (g Goal) ID() kernel.UUID {
	return g.id
}

// Title returns the goal's title.
func (g Goal) Title() string {
	return g.title
}

// Position returns the goal's ordering position within the route.
func (g Goal) Position() int {
	return g.position
}
