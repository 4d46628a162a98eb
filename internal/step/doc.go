// Package step defines the unit of visual state emitted by sorting engines.
//
// A [Snapshot] is one complete rendering frame: a full copy of the array,
// the highlight kind attached to individual indices, and the indices that
// are finalized for the rest of the run. Consumers treat snapshots as
// read-only values; nothing in a snapshot is patched incrementally.
//
//   - [Highlight]: closed set of annotation kinds
//   - [New]: the single construction helper used by every engine
//   - [Tracker]: running set of indices owned by one run
package step
