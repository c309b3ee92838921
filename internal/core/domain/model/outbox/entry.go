package outbox

import (
	"errors"
	"fmt"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the NewEntry or RestoreEntry factory methods.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")
)

// AggregateTypeRoute is the aggregate type recorded on every entry produced
// by the route lifecycle engine.
const AggregateTypeRoute = "route"

// Status represents the delivery state of an outbox entry.
type Status string

const (
	// StatusPending marks an entry awaiting delivery by the relay.
	StatusPending Status = "pending"
	// StatusProcessed marks an entry the relay delivered successfully.
	StatusProcessed Status = "processed"
	// StatusFailed marks an entry whose last delivery attempt failed.
	StatusFailed Status = "failed"
)

// Validate checks if the Status value is one of the defined delivery states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outbox status",
			fmt.Errorf("%q is not a valid outbox status", string(s)))
	}
}

// EventName identifies a domain event in the closed catalogue emitted by the
// route lifecycle engine.
type EventName string

const (
	EventRouteCreated   EventName = "route.created"
	EventRouteActivated EventName = "route.activated"
	EventRouteCompleted EventName = "route.completed"
)

// Validate checks if the event name belongs to the catalogue.
func (n EventName) Validate() error {
	switch n {
	case EventRouteCreated, EventRouteActivated, EventRouteCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event name",
			fmt.Errorf("%q is not in the event catalogue", string(n)))
	}
}

// Entry is one at-least-once delivery unit in the transactional outbox.
// The core creates entries in pending status inside the mutation's
// transaction and never touches them again; MarkProcessed and MarkFailed
// exist for the relay.
type Entry struct {
	id            kernel.UUID
	aggregateType string
	aggregateID   kernel.UUID
	eventName     EventName
	payload       []byte
	status        Status
	attempts      int
	createdAt     time.Time
	processedAt   *time.Time
	lastError     *string

	isConstructed bool
}

// NewEntry creates a pending outbox entry for a route aggregate.
//
// Parameters:
//   - id: unique identifier of the entry
//   - aggregateID: the route the event concerns
//   - eventName: catalogue event name
//   - payload: serialized event payload, must not be empty
//   - now: creation instant
func NewEntry(
	id kernel.UUID,
	aggregateID kernel.UUID,
	eventName EventName,
	payload []byte,
	now time.Time,
) (*Entry, error) {
	entry := &Entry{
		aggregateType: AggregateTypeRoute,
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setAggregateID(aggregateID),
		entry.setEventName(eventName),
		entry.setPayload(payload),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreEntry reconstructs an entry from persistence, including the
// delivery bookkeeping owned by the relay.
func RestoreEntry(
	id kernel.UUID,
	aggregateType string,
	aggregateID kernel.UUID,
	eventName EventName,
	payload []byte,
	status Status,
	attempts int,
	createdAt time.Time,
	processedAt *time.Time,
	lastError *string,
) (*Entry, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	entry, err := NewEntry(id, aggregateID, eventName, payload, createdAt)
	if err != nil {
		return nil, err
	}

	entry.aggregateType = aggregateType
	entry.status = status
	entry.attempts = attempts
	entry.processedAt = processedAt
	entry.lastError = lastError
	return entry, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// AggregateType returns the type of the aggregate the event concerns.
func (e *Entry) AggregateType() string {
	return e.aggregateType
}

// AggregateID returns the identifier of the aggregate the event concerns.
func (e *Entry) AggregateID() kernel.UUID {
	return e.aggregateID
}

// EventName returns the catalogue event name.
func (e *Entry) EventName() EventName {
	return e.eventName
}

// Payload returns the serialized event payload.
func (e *Entry) Payload() []byte {
	return e.payload
}

// Status returns the entry's delivery status.
func (e *Entry) Status() Status {
	return e.status
}

// Attempts returns the number of delivery attempts made by the relay.
func (e *Entry) Attempts() int {
	return e.attempts
}

// CreatedAt returns the entry's creation timestamp.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// ProcessedAt returns the successful delivery instant, or nil.
func (e *Entry) ProcessedAt() *time.Time {
	return e.processedAt
}

// LastError returns the last delivery error text, or nil.
func (e *Entry) LastError() *string {
	return e.lastError
}

// MarkProcessed records a successful delivery. For relay use only; an entry
// that is already processed cannot be marked again.
func (e *Entry) MarkProcessed(now time.Time) error {
	if e.status == StatusProcessed {
		return errs.NewInvalidStateError(string(e.status), string(StatusProcessed))
	}

	e.status = StatusProcessed
	e.attempts++
	e.processedAt = &now
	e.lastError = nil
	return nil
}

// MarkFailed records a failed delivery attempt with the error text.
// For relay use only; a processed entry cannot fail afterwards.
func (e *Entry) MarkFailed(deliveryErr string) error {
	if e.status == StatusProcessed {
		return errs.NewInvalidStateError(string(e.status), string(StatusFailed))
	}
	if deliveryErr == "" {
		return errs.NewValueIsRequiredError("delivery error")
	}

	e.status = StatusFailed
	e.attempts++
	e.lastError = &deliveryErr
	return nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setAggregateID(aggregateID kernel.UUID) error {
	if err := aggregateID.Validate(); err != nil {
		return err
	}
	e.aggregateID = aggregateID
	return nil
}

func (e *Entry) setEventName(eventName EventName) error {
	if err := eventName.Validate(); err != nil {
		return err
	}
	e.eventName = eventName
	return nil
}

func (e *Entry) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	e.payload = payload
	return nil
}
