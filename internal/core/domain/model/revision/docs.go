// Package revision implements the append-only audit trail of route mutations.
// Each Record is an immutable fact: it captures one committed change to one
// route, carries a per-route version that starts at 1 and strictly increases,
// and is written in the same transaction as the mutation it describes.
//
// Payloads form a closed, tagged set of variants, one per lifecycle engine
// operation, instead of a free-form map. A created record carries a full
// snapshot; an updated record carries the field diff plus the post-update
// snapshot; transition records carry the old/new values of the fields the
// transition touched. A single record never mixes shapes.
package revision
