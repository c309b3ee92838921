// Package route implements the Route aggregate: a child's individualized
// care plan. The aggregate owns its goals and phases, enforces the lifecycle
// state machine (draft, active, paused, completed, archived), and reports
// every observable mutation as a set of field changes so the application
// layer can append revision records and outbox events atomically.
//
// Domain invariants carried by this package:
//   - A route is created in draft and is never deleted, only archived.
//   - A route with no goals and no phases cannot be activated.
//   - Status transitions follow the fixed transition table; anything else
//     fails with an InvalidStateError.
//
// The single-active-route-per-child invariant spans aggregates and is
// enforced by the command handlers against the repository, inside the same
// transaction as the write.
package route
