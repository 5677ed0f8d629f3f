// Package trainer: sentinel error set.
package trainer

import "errors"

var (
	// ErrClassOutOfRange indicates a label fell outside [0, K) for the
	// AssocMem being trained.
	ErrClassOutOfRange = errors.New("trainer: label out of class range")

	// ErrLengthMismatch indicates data and labels have different lengths.
	ErrLengthMismatch = errors.New("trainer: data and labels length mismatch")

	// ErrRollingRequiresBinary indicates TrainRolling was called against a
	// bipolar AssocMem; the rolling bit-count accumulator is defined only
	// for the binary majority-vote path.
	ErrRollingRequiresBinary = errors.New("trainer: rolling training requires a binary AssocMem")
)
