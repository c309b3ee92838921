package revision

import (
	"errors"
	"fmt"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// Record is one immutable entry in a route's revision history. Records are
// created once and never mutated; ordering within a route is given by the
// strictly increasing version number.
type Record struct {
	id        kernel.UUID
	routeID   kernel.UUID
	version   int
	payload   Payload
	actorID   kernel.UUID
	reason    string
	createdAt time.Time

	isConstructed bool
}

// NewRecord creates a revision record for a committed route mutation.
//
// Parameters:
//   - id: unique identifier of the record itself
//   - routeID: the route the record belongs to
//   - version: per-route sequence number, must be >= 1
//   - payload: the tagged change description
//   - actorID: the user the mutation is attributed to
//   - reason: optional free-text reason supplied by the actor
//   - now: creation instant
func NewRecord(
	id kernel.UUID,
	routeID kernel.UUID,
	version int,
	payload Payload,
	actorID kernel.UUID,
	reason string,
	now time.Time,
) (*Record, error) {
	record := &Record{
		reason:        reason,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setRouteID(routeID),
		record.setVersion(version),
		record.setPayload(payload),
		record.setActorID(actorID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(
	id kernel.UUID,
	routeID kernel.UUID,
	version int,
	payload Payload,
	actorID kernel.UUID,
	reason string,
	createdAt time.Time,
) (*Record, error) {
	return NewRecord(id, routeID, version, payload, actorID, reason, createdAt)
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// RouteID returns the identifier of the route the record belongs to.
func (r *Record) RouteID() kernel.UUID {
	return r.routeID
}

// Version returns the record's per-route sequence number.
func (r *Record) Version() int {
	return r.version
}

// Payload returns the tagged change description.
func (r *Record) Payload() Payload {
	return r.payload
}

// ActorID returns the user the mutation is attributed to.
func (r *Record) ActorID() kernel.UUID {
	return r.actorID
}

// Reason returns the optional free-text reason, empty when none was given.
func (r *Record) Reason() string {
	return r.reason
}

// CreatedAt returns the record's creation timestamp.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	r.routeID = routeID
	return nil
}

func (r *Record) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version",
			fmt.Errorf("%d is below the initial version 1", version))
	}
	r.version = version
	return nil
}

func (r *Record) setPayload(payload Payload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	r.payload = payload
	return nil
}

func (r *Record) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	r.actorID = actorID
	return nil
}
