package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careplan/internal/core/ports"
)

// RelayOutboxEventsCommandHandler drains pending outbox entries to the event
// publisher. Each entry is published and then individually marked processed
// or failed, so a crash between publish and mark only causes redelivery.
type RelayOutboxEventsCommandHandler struct {
	outboxRepo ports.OutboxRepository
	publisher  ports.EventPublisher
}

// NewRelayOutboxEventsCommandHandler creates a handler for outbox relay passes.
func NewRelayOutboxEventsCommandHandler(
	outboxRepo ports.OutboxRepository,
	publisher ports.EventPublisher,
) RelayOutboxEventsCommandHandler {
	return RelayOutboxEventsCommandHandler{
		outboxRepo: outboxRepo,
		publisher:  publisher,
	}
}

// Handle relays one batch of pending entries. A failed publish marks that
// entry failed and the pass continues with the rest of the batch.
func (h RelayOutboxEventsCommandHandler) Handle(ctx context.Context, cmd RelayOutboxEventsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entries, err := h.outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return fmt.Errorf("fetch pending outbox entries: %w", err)
	}

	var relayErrs []error
	for _, entry := range entries {
		if publishErr := h.publisher.Publish(ctx, entry); publishErr != nil {
			if markErr := entry.MarkFailed(publishErr.Error()); markErr != nil {
				relayErrs = append(relayErrs, markErr)
				continue
			}
			relayErrs = append(relayErrs, fmt.Errorf("publish entry %s: %w", entry.ID(), publishErr))
		} else if markErr := entry.MarkProcessed(time.Now().UTC()); markErr != nil {
			relayErrs = append(relayErrs, markErr)
			continue
		}

		if updateErr := h.outboxRepo.Update(ctx, entry); updateErr != nil {
			relayErrs = append(relayErrs, fmt.Errorf("update entry %s: %w", entry.ID(), updateErr))
		}
	}

	return errors.Join(relayErrs...)
}
