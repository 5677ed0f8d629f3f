// Package assocmem: sentinel error set.
package assocmem

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive class count or
	// dimension, a nil vector, or a negative sample count.
	ErrInvalidArgument = errors.New("assocmem: invalid argument")

	// ErrClassOutOfRange indicates a class index outside [0, K).
	ErrClassOutOfRange = errors.New("assocmem: class index out of range")

	// ErrEmpty indicates Classify was called before any class received a
	// sample.
	ErrEmpty = errors.New("assocmem: no class has any samples")

	// ErrNormalizeBinaryMode indicates Normalize was called on a binary
	// AssocMem; normalization is defined only for the bipolar incremental
	// path.
	ErrNormalizeBinaryMode = errors.New("assocmem: normalize is bipolar-only")
)
