package route

import (
	"fmt"

	"careplan/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
// It implements a state machine with defined transitions to ensure routes
// follow the correct care-plan workflow.
//
// State transitions:
//
//	Draft ──> Active ──> Completed ──> Archived
//	            │ ▲           ▲            ▲
//	            ▼ │           │            │
//	           Paused ────────┴────────────┘
//
// Archived is terminal; no transition leaves it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a newly created route.
	// Draft routes can be freely edited and are not yet in effect.
	Draft

	// Active indicates the route is the child's current care plan.
	// At most one route per child may be active at any time.
	Active

	// Paused indicates the route is temporarily suspended.
	Paused

	// Completed indicates the route ran its course.
	Completed

	// Archived is the terminal housekeeping status.
	Archived
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Active:    "active",
		Paused:    "paused",
		Completed: "completed",
		Archived:  "archived",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Active:    "active",
		Paused:    "paused",
		Completed: "completed",
		Archived:  "archived",
	}
}

// StatusFromString parses the persistence representation of a status.
// Returns an error for anything that is not a valid lifecycle state name.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, matching the wire and
// persistence representation. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Archived
}

// Activate transitions the status to Active.
//
// Valid transitions:
//   - Draft -> Active
//
// Returns (0, InvalidStateError) for any other origin, including Active
// itself: re-activating an active route is an illegal transition.
func (s Status) Activate() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateError(s.String(), Active.String())
	}
	return Active, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed
//   - Paused -> Completed
func (s Status) Complete() (Status, error) {
	if s != Active && s != Paused {
		return 0, errs.NewInvalidStateError(s.String(), Completed.String())
	}
	return Completed, nil
}

// Pause transitions the status to Paused.
//
// Valid transitions:
//   - Active -> Paused
func (s Status) Pause() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidStateError(s.String(), Paused.String())
	}
	return Paused, nil
}

// Resume transitions the status back to Active.
//
// Valid transitions:
//   - Paused -> Active
func (s Status) Resume() (Status, error) {
	if s != Paused {
		return 0, errs.NewInvalidStateError(s.String(), Active.String())
	}
	return Active, nil
}

// Archive transitions the status to Archived.
//
// Valid transitions:
//   - Completed -> Archived
//   - Paused -> Archived
//
// Archived is terminal; there is no transition out of it.
func (s Status) Archive() (Status, error) {
	if s != Completed && s != Paused {
		return 0, errs.NewInvalidStateError(s.String(), Archived.String())
	}
	return Archived, nil
}
