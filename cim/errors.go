// Package cim: sentinel error set.
package cim

import "errors"

var (
	// ErrInvalidArgument indicates L < 2, D <= 0, a negative B or flip
	// budget, an empty B, or a nil RNG or item memory.
	ErrInvalidArgument = errors.New("cim: invalid argument")

	// ErrNotPermutation indicates a supplied index slice is not a valid
	// permutation of [0, D).
	ErrNotPermutation = errors.New("cim: not a permutation of [0,D)")

	// ErrLengthMismatch indicates the per-feature B rows or permutations
	// passed to NewPrecomputedFromB do not number F, or the B rows differ
	// in length (so the ladders would not share one L).
	ErrLengthMismatch = errors.New("cim: B length must equal L-1")

	// ErrOutOfRange names a level outside [0, L). No function in this
	// package returns it: At panics on such a level.
	ErrOutOfRange = errors.New("cim: level out of range")
)
