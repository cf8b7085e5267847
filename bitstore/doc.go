// Package bitstore persists named bit sequences.
//
// A Store maps string names to bitvec.Sequence values using the bitvec wire
// format (padding byte + packed bits), so anything written by a Store is
// readable by any other consumer of the serialized form.
//
// # Built-in Implementations
//
//   - MemoryStore: map-backed, for testing and ephemeral use
//   - LocalStore: one file per name under a root directory, atomic writes
//   - CachedStore: read-through cache over any inner Store
//
// Implementations are safe for concurrent use; they are the external
// synchronization boundary around the single-owner bitvec.Sequence. Get
// always returns a freshly owned Sequence, never a shared one.
package bitstore
