package route

import (
	"errors"
	"fmt"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not created
	// through the NewRoute or RestoreRoute factory methods.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")
)

// Plan horizon bounds in weeks. Zero means the horizon is not set.
const (
	minPlanHorizonWeeks = 1
	maxPlanHorizonWeeks = 104
)

// FieldChange captures the before and after value of a single route field.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Changes is the set of fields a mutation actually altered, keyed by field
// name. An empty set means the mutation was a no-op and must not be recorded.
type Changes map[string]FieldChange

// Snapshot is a flat, serializable copy of the route's state at a point in
// time. It is embedded in revision payloads so the audit trail can be read
// without replaying diffs.
type Snapshot struct {
	ID               string     `json:"id"`
	ChildID          string     `json:"childId"`
	LeadSpecialistID string     `json:"leadSpecialistId"`
	TemplateID       *string    `json:"templateId,omitempty"`
	Title            string     `json:"title"`
	Summary          string     `json:"summary"`
	Status           string     `json:"status"`
	PlanHorizonWeeks int        `json:"planHorizonWeeks"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	GoalCount        int        `json:"goalCount"`
	PhaseCount       int        `json:"phaseCount"`
}

// UpdatePatch carries the optional fields of a plain route update.
// Nil fields are left untouched.
type UpdatePatch struct {
	Title            *string
	Summary          *string
	PlanHorizonWeeks *int
	LeadSpecialistID *kernel.UUID
}

// Route represents a child's individualized care plan. It is the aggregate
// root that owns the plan's goals and phases and manages the lifecycle from
// draft through activation to completion and archival.
//
// Route follows these invariants:
//   - Must have a valid unique identifier, child, and lead specialist
//   - Must have a non-empty title
//   - Status transitions follow the lifecycle state machine in Status
//   - Cannot be activated while it has no goals and no phases
//   - Can only be created through NewRoute or RestoreRoute
//
// Every mutating method returns the Changes it produced so callers can append
// the matching revision record; an empty Changes set signals a suppressed
// no-op write.
type Route struct {
	id               kernel.UUID
	childID          kernel.UUID
	leadSpecialistID kernel.UUID
	templateID       *kernel.UUID
	title            string
	summary          string
	status           Status
	planHorizonWeeks int
	startDate        *time.Time
	endDate          *time.Time
	createdAt        time.Time
	updatedAt        time.Time
	goals            []Goal
	phases           []Phase

	isConstructed bool
}

// NewRoute creates a new Route in Draft status. This is the only way to
// create a route that has not been persisted before.
//
// Parameters:
//   - id: unique identifier for the route
//   - childID: the child the plan belongs to
//   - leadSpecialistID: the specialist responsible for the plan
//   - templateID: optional template the plan was derived from
//   - title: required plan title
//   - summary: optional free-text summary
//   - planHorizonWeeks: optional horizon, 0 when unset, otherwise 1..104
//   - now: creation instant, recorded as createdAt/updatedAt
func NewRoute(
	id kernel.UUID,
	childID kernel.UUID,
	leadSpecialistID kernel.UUID,
	templateID *kernel.UUID,
	title string,
	summary string,
	planHorizonWeeks int,
	now time.Time,
) (*Route, error) {
	route := &Route{
		status:        Draft,
		summary:       summary,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		route.setID(id),
		route.setChildID(childID),
		route.setLeadSpecialistID(leadSpecialistID),
		route.setTemplateID(templateID),
		route.setTitle(title),
		route.setPlanHorizonWeeks(planHorizonWeeks),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// RestoreRoute reconstructs a route from persistence, including its current
// status, dates, and owned children. Used exclusively by repository adapters.
func RestoreRoute(
	id kernel.UUID,
	childID kernel.UUID,
	leadSpecialistID kernel.UUID,
	templateID *kernel.UUID,
	title string,
	summary string,
	status Status,
	planHorizonWeeks int,
	startDate *time.Time,
	endDate *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	goals []Goal,
	phases []Phase,
) (*Route, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	route, err := NewRoute(id, childID, leadSpecialistID, templateID, title, summary, planHorizonWeeks, createdAt)
	if err != nil {
		return nil, err
	}

	route.status = status
	route.startDate = startDate
	route.endDate = endDate
	route.updatedAt = updatedAt
	route.goals = goals
	route.phases = phases
	return route, nil
}

// Validate ensures the Route instance was properly constructed through one of
// the factory methods. Returns ErrRouteIsNotConstructed otherwise.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// ChildID returns the identifier of the child the plan belongs to.
func (r *Route) ChildID() kernel.UUID {
	return r.childID
}

// LeadSpecialistID returns the identifier of the responsible specialist.
func (r *Route) LeadSpecialistID() kernel.UUID {
	return r.leadSpecialistID
}

// TemplateID returns the template the plan was derived from, or nil.
func (r *Route) TemplateID() *kernel.UUID {
	return r.templateID
}

// Title returns the plan title.
func (r *Route) Title() string {
	return r.title
}

// Summary returns the free-text summary.
func (r *Route) Summary() string {
	return r.summary
}

// Status returns the current lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// PlanHorizonWeeks returns the plan horizon in weeks, 0 when unset.
func (r *Route) PlanHorizonWeeks() int {
	return r.planHorizonWeeks
}

// StartDate returns the activation instant, or nil before activation.
func (r *Route) StartDate() *time.Time {
	return r.startDate
}

// EndDate returns the completion instant, or nil before completion.
func (r *Route) EndDate() *time.Time {
	return r.endDate
}

// CreatedAt returns the creation timestamp.
func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (r *Route) UpdatedAt() time.Time {
	return r.updatedAt
}

// Goals returns the route's owned goals.
func (r *Route) Goals() []Goal {
	return r.goals
}

// Phases returns the route's owned phases.
func (r *Route) Phases() []Phase {
	return r.phases
}

// Snapshot returns a flat copy of the route's current state for embedding
// in revision payloads.
func (r *Route) Snapshot() Snapshot {
	var templateID *string
	if r.templateID != nil {
		s := r.templateID.String()
		templateID = &s
	}

	return Snapshot{
		ID:               r.id.String(),
		ChildID:          r.childID.String(),
		LeadSpecialistID: r.leadSpecialistID.String(),
		TemplateID:       templateID,
		Title:            r.title,
		Summary:          r.summary,
		Status:           r.status.String(),
		PlanHorizonWeeks: r.planHorizonWeeks,
		StartDate:        r.startDate,
		EndDate:          r.endDate,
		GoalCount:        len(r.goals),
		PhaseCount:       len(r.phases),
	}
}

// ApplyUpdate applies the non-nil fields of the patch to the route and
// returns the set of fields whose value actually changed. When the returned
// set is empty the route was not mutated and nothing must be persisted.
//
// Archived routes are immutable; updating one fails with a ConflictError.
func (r *Route) ApplyUpdate(patch UpdatePatch, now time.Time) (Changes, error) {
	if err := r.ensureMutable(); err != nil {
		return nil, err
	}

	changes := Changes{}

	if patch.Title != nil && *patch.Title != r.title {
		if *patch.Title == "" {
			return nil, errs.NewValueIsRequiredError("title")
		}
		changes["title"] = FieldChange{Old: r.title, New: *patch.Title}
		r.title = *patch.Title
	}

	if patch.Summary != nil && *patch.Summary != r.summary {
		changes["summary"] = FieldChange{Old: r.summary, New: *patch.Summary}
		r.summary = *patch.Summary
	}

	if patch.PlanHorizonWeeks != nil && *patch.PlanHorizonWeeks != r.planHorizonWeeks {
		old := r.planHorizonWeeks
		if err := r.setPlanHorizonWeeks(*patch.PlanHorizonWeeks); err != nil {
			return nil, err
		}
		changes["planHorizonWeeks"] = FieldChange{Old: old, New: r.planHorizonWeeks}
	}

	if patch.LeadSpecialistID != nil && !patch.LeadSpecialistID.IsEqual(r.leadSpecialistID) {
		old := r.leadSpecialistID.String()
		if err := r.setLeadSpecialistID(*patch.LeadSpecialistID); err != nil {
			return nil, err
		}
		changes["leadSpecialistId"] = FieldChange{Old: old, New: r.leadSpecialistID.String()}
	}

	if len(changes) == 0 {
		return changes, nil
	}

	r.updatedAt = now
	return changes, nil
}

// Activate transitions the route to Active and stamps the start date.
//
// Preconditions enforced here:
//   - the status transition is legal (Draft -> Active), else InvalidStateError
//   - the route has at least one goal or phase, else ValidationError
//
// The single-active-route-per-child invariant is cross-aggregate and is
// checked by the activating command handler within the same transaction.
func (r *Route) Activate(now time.Time) (Changes, error) {
	newStatus, err := r.status.Activate()
	if err != nil {
		return nil, err
	}

	if len(r.goals) == 0 && len(r.phases) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"route",
			errors.New("empty route cannot be activated"),
		)
	}

	changes := Changes{
		"status":    {Old: r.status.String(), New: newStatus.String()},
		"startDate": {Old: nil, New: now},
	}

	r.status = newStatus
	r.startDate = &now
	r.updatedAt = now
	return changes, nil
}

// Complete transitions the route to Completed and stamps the end date.
// Legal from Active and Paused. The open-assignment precondition is external
// and is checked by the completing command handler.
func (r *Route) Complete(now time.Time) (Changes, error) {
	newStatus, err := r.status.Complete()
	if err != nil {
		return nil, err
	}

	changes := Changes{
		"status":  {Old: r.status.String(), New: newStatus.String()},
		"endDate": {Old: nil, New: now},
	}

	r.status = newStatus
	r.endDate = &now
	r.updatedAt = now
	return changes, nil
}

// Pause suspends an active route.
func (r *Route) Pause(now time.Time) (Changes, error) {
	newStatus, err := r.status.Pause()
	if err != nil {
		return nil, err
	}

	changes := Changes{
		"status": {Old: r.status.String(), New: newStatus.String()},
	}

	r.status = newStatus
	r.updatedAt = now
	return changes, nil
}

// Resume reactivates a paused route. The single-active-route invariant is
// re-checked by the resuming command handler, since another route may have
// been activated for the child while this one was paused.
func (r *Route) Resume(now time.Time) (Changes, error) {
	newStatus, err := r.status.Resume()
	if err != nil {
		return nil, err
	}

	changes := Changes{
		"status": {Old: r.status.String(), New: newStatus.String()},
	}

	r.status = newStatus
	r.updatedAt = now
	return changes, nil
}

// Archive moves a completed or paused route to the terminal Archived status.
func (r *Route) Archive(now time.Time) (Changes, error) {
	newStatus, err := r.status.Archive()
	if err != nil {
		return nil, err
	}

	changes := Changes{
		"status": {Old: r.status.String(), New: newStatus.String()},
	}

	r.status = newStatus
	r.updatedAt = now
	return changes, nil
}

// AddGoal appends a goal to the route. Fails on archived routes and on
// duplicate goal identifiers.
func (r *Route) AddGoal(goal Goal, now time.Time) (Changes, error) {
	if err := r.ensureMutable(); err != nil {
		return nil, err
	}

	for _, existing := range r.goals {
		if existing.ID().IsEqual(goal.ID()) {
			return nil, errs.NewConflictError("goalId",
				fmt.Sprintf("goal %s already belongs to route %s", goal.ID(), r.id))
		}
	}

	changes := Changes{
		"goals": {Old: len(r.goals), New: len(r.goals) + 1},
	}

	r.goals = append(r.goals, goal)
	r.updatedAt = now
	return changes, nil
}

// AddPhase appends a phase to the route. Fails on archived routes and on
// duplicate phase identifiers.
func (r *Route) AddPhase(phase Phase, now time.Time) (Changes, error) {
	if err := r.ensureMutable(); err != nil {
		return nil, err
	}

	for _, existing := range r.phases {
		if existing.ID().IsEqual(phase.ID()) {
			return nil, errs.NewConflictError("phaseId",
				fmt.Sprintf("phase %s already belongs to route %s", phase.ID(), r.id))
		}
	}

	changes := Changes{
		"phases": {Old: len(r.phases), New: len(r.phases) + 1},
	}

	r.phases = append(r.phases, phase)
	r.updatedAt = now
	return changes, nil
}

// ensureMutable rejects field-level edits on archived routes.
// Archived is terminal for content as well as for status.
func (r *Route) ensureMutable() error {
	if r.status.IsTerminal() {
		return errs.NewConflictError("routeId",
			fmt.Sprintf("archived route %s cannot be modified", r.id))
	}
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setChildID(childID kernel.UUID) error {
	if err := childID.Validate(); err != nil {
		return err
	}
	r.childID = childID
	return nil
}

func (r *Route) setLeadSpecialistID(leadSpecialistID kernel.UUID) error {
	if err := leadSpecialistID.Validate(); err != nil {
		return err
	}
	r.leadSpecialistID = leadSpecialistID
	return nil
}

func (r *Route) setTemplateID(templateID *kernel.UUID) error {
	if templateID == nil {
		return nil
	}
	if err := templateID.Validate(); err != nil {
		return err
	}
	id := *templateID
	r.templateID = &id
	return nil
}

func (r *Route) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	r.title = title
	return nil
}

func (r *Route) setPlanHorizonWeeks(weeks int) error {
	if weeks == 0 {
		r.planHorizonWeeks = 0
		return nil
	}
	if weeks < minPlanHorizonWeeks || weeks > maxPlanHorizonWeeks {
		return errs.NewValueIsOutOfRangeError("planHorizonWeeks", weeks, minPlanHorizonWeeks, maxPlanHorizonWeeks)
	}
	r.planHorizonWeeks = weeks
	return nil
}
