// Package encoder: sentinel error set.
package encoder

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive dimension/level count/
	// n-gram size, minLevel >= maxLevel, a nil item memory passed to an
	// option, or both WithIM and WithPrecomputed supplied to New.
	ErrInvalidArgument = errors.New("encoder: invalid argument")

	// ErrNoItemMemory indicates neither a precomputed table nor an
	// IM+CiM pair was supplied to New.
	ErrNoItemMemory = errors.New("encoder: no item memory configured")

	// ErrFeatureCountMismatch indicates a sample's length does not equal
	// the configured feature count F.
	ErrFeatureCountMismatch = errors.New("encoder: sample length does not match feature count")

	// ErrWindowSizeMismatch indicates encode_timeseries was called with a
	// window whose length does not equal the configured n-gram size.
	ErrWindowSizeMismatch = errors.New("encoder: window length does not match n-gram size")

	// ErrEmptyWindow indicates is_window_stable or encode_timeseries was
	// called with zero rows.
	ErrEmptyWindow = errors.New("encoder: empty window")
)
