package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary around one lifecycle
// engine operation. It provides transaction control and hands out
// repositories bound to the active transaction, which is what makes the
// route + revision + outbox triple commit or roll back as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository

	// RevisionRepository returns a RevisionRepository bound to the
	// current transaction.
	RevisionRepository() RevisionRepository

	// OutboxRepository returns an OutboxRepository bound to the current
	// transaction.
	OutboxRepository() OutboxRepository

	// Assignments returns the assignment query bound to the current
	// transaction, so the completion precondition reads the same
	// consistent state the write commits against.
	Assignments() AssignmentCounter
}
