// Package trainer fills an AssocMem from labeled training data, selecting
// the bipolar incremental-add path or the binary bulk-bundling path
// according to the AssocMem's mode, plus a non-temporal general path and
// a memory-light rolling variant of the binary path.
package trainer
