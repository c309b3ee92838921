package commands

import (
	"errors"

	"careplan/internal/pkg/errs"
	"careplan/internal/pkg/guard"
)

var ErrRelayOutboxEventsCommandIsNotConstructed = errors.New(
	"RelayOutboxEventsCommand must be created via NewRelayOutboxEventsCommand constructor",
)

const maxOutboxBatchSize = 1000

// RelayOutboxEventsCommand triggers one relay pass over the outbox: pending
// entries are fetched oldest first, handed to the publisher, and marked
// processed or failed.
//
//nolint:recvcheck //using for validation
type RelayOutboxEventsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOutboxEventsCommand creates a command relaying up to batchSize
// pending entries per pass.
func NewRelayOutboxEventsCommand(batchSize int) (RelayOutboxEventsCommand, error) {
	if batchSize < 1 || batchSize > maxOutboxBatchSize {
		return RelayOutboxEventsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, 1, maxOutboxBatchSize)
	}

	return RelayOutboxEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BatchSize returns the maximum number of entries relayed per pass.
func (c RelayOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}

// Validate ensures the command was created through the constructor.
func (c *RelayOutboxEventsCommand) Validate() error {
	return c.guard.Validate(
		ErrRelayOutboxEventsCommandIsNotConstructed,
	)
}
