package revision

import (
	"fmt"

	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"
)

// PayloadKind tags the payload variant. There is exactly one kind per
// mutating lifecycle engine operation.
type PayloadKind string

const (
	KindCreated   PayloadKind = "created"
	KindUpdated   PayloadKind = "updated"
	KindActivated PayloadKind = "activated"
	KindCompleted PayloadKind = "completed"
	KindPaused    PayloadKind = "paused"
	KindResumed   PayloadKind = "resumed"
	KindArchived  PayloadKind = "archived"
)

// transitionKinds are the payload kinds produced by pure status transitions.
// They carry a field diff and no snapshot.
var transitionKinds = map[PayloadKind]bool{
	KindActivated: true,
	KindCompleted: true,
	KindPaused:    true,
	KindResumed:   true,
	KindArchived:  true,
}

// Payload describes one committed change to a route. The shape depends on
// Kind:
//   - created: Snapshot only (the route as it was born)
//   - updated: Changes (field diffs) plus the post-update Snapshot
//   - activated/completed/paused/resumed/archived: Changes only
type Payload struct {
	Kind     PayloadKind     `json:"kind"`
	Changes  route.Changes   `json:"changes,omitempty"`
	Snapshot *route.Snapshot `json:"snapshot,omitempty"`
}

// NewCreatedPayload builds the payload recorded when a route is created.
func NewCreatedPayload(snapshot route.Snapshot) Payload {
	return Payload{Kind: KindCreated, Snapshot: &snapshot}
}

// NewUpdatedPayload builds the payload recorded for a plain field update:
// the diff of the fields that changed plus the post-update snapshot.
func NewUpdatedPayload(changes route.Changes, snapshot route.Snapshot) Payload {
	return Payload{Kind: KindUpdated, Changes: changes, Snapshot: &snapshot}
}

// NewTransitionPayload builds the payload recorded for a lifecycle
// transition, carrying the old/new values of the fields the transition
// touched.
func NewTransitionPayload(kind PayloadKind, changes route.Changes) Payload {
	return Payload{Kind: kind, Changes: changes}
}

// Validate checks that the payload has the shape its kind requires.
func (p Payload) Validate() error {
	switch {
	case p.Kind == KindCreated:
		if p.Snapshot == nil {
			return errs.NewValueIsRequiredError("created payload snapshot")
		}
		if len(p.Changes) != 0 {
			return errs.NewValueIsInvalidError("created payload must not carry changes")
		}
	case p.Kind == KindUpdated:
		if len(p.Changes) == 0 {
			return errs.NewValueIsRequiredError("updated payload changes")
		}
		if p.Snapshot == nil {
			return errs.NewValueIsRequiredError("updated payload snapshot")
		}
	case transitionKinds[p.Kind]:
		if len(p.Changes) == 0 {
			return errs.NewValueIsRequiredError(fmt.Sprintf("%s payload changes", p.Kind))
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("payload kind",
			fmt.Errorf("%q is not a known payload kind", p.Kind))
	}

	return nil
}
