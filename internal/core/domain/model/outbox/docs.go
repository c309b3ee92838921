// Package outbox implements the transactional outbox entries that announce
// committed route lifecycle changes to other subsystems.
//
// An Entry is written in the same database transaction as the route mutation
// and the revision record that caused it, which is what makes the contract
// hold: the relay never observes an event for a mutation that did not commit,
// and a committed mutation never fails to enqueue its event. The core only
// ever inserts entries; the status transitions to processed or failed belong
// to the external relay.
//
// The event catalogue is closed: route.created, route.activated, and
// route.completed. Plain field updates are recorded in the revision history
// but deliberately emit no event, mirroring the observed behavior of the
// source system.
package outbox
