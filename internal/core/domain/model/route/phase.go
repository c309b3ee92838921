package route

import (
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
)

// Phase is a time-boxed stage owned by a route. Like goals, phases cascade
// with their route and carry only the attributes the lifecycle engine needs.
type Phase struct {
	id       kernel.UUID
	title    string
	position int
}

// NewPhase creates a phase with a valid identifier, a non-empty title, and a
// non-negative ordering position.
func NewPhase(id kernel.UUID, title string, position int) (Phase, error) {
	if err := id.Validate(); err != nil {
		return Phase{}, err
	}
	if title == "" {
		return Phase{}, errs.NewValueIsRequiredError("phase title")
	}
	if position < 0 {
		return Phase{}, errs.NewValueIsInvalidError("phase position")
	}

	return Phase{id: id, title: title, position: position}, nil
}

// RestorePhase reconstructs a phase from persistence.
func RestorePhase(id kernel.UUID, title string, position int) (Phase, error) {
	return NewPhase(id, title, position)
}

// ID returns the phase's unique identifier.
func (p Phase) ID() kernel.UUID {
	return p.id
}

// Title returns the phase's title.
func (p Phase) Title() string {
	return p.title
}

// Position returns the phase's ordering position within the route.
func (p Phase) Position() int {
	return p.position
}
