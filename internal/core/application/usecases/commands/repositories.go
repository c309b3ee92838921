// Package commands contains the route lifecycle engine: the business
// operations that mutate route state. It is the only place allowed to change
// a route's status and the only producer of revision records and outbox
// entries. All commands follow a consistent pattern: constructor validation,
// transaction management, precondition checks against the live store, and a
// single atomic write of the route + revision + outbox triple.
package commands

import (
	"context"

	"careplan/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure the state patch, the revision record,
// and the outbox entry of one operation commit or roll back together.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// AuditRepoFactory provides access to the revision and outbox
	// repositories within a transaction.
	AuditRepoFactory interface {
		RevisionRepository() ports.RevisionRepository
		OutboxRepository() ports.OutboxRepository
	}

	// RouteUoW manages transactions for route lifecycle operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		AuditRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// CompletionUoW additionally exposes the assignment query, which the
	// completion precondition must read inside the same transaction as
	// the write.
	CompletionUoW interface {
		RouteUoW
		Assignments() ports.AssignmentCounter
	}

	// CompletionUoWFactory creates new completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}
)
