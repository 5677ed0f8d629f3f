// Package itemmem: sentinel error set.
package itemmem

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive N or D was requested, or a
	// nil RNG was supplied to Random.
	ErrInvalidArgument = errors.New("itemmem: invalid argument")

	// ErrIOFormat indicates a CSV or packed-bitstring source was malformed:
	// wrong column count, an unparsable element, or a row length that does
	// not match the declared dimension.
	ErrIOFormat = errors.New("itemmem: malformed input")

	// ErrOutOfRange names a feature index outside [0, N). No function in
	// this package returns it: At panics on such an index.
	ErrOutOfRange = errors.New("itemmem: index out of range")

	// ErrModeUnsupported indicates the packed bitstring codec was asked to
	// round-trip a bipolar table; that form only represents {0,1} elements.
	ErrModeUnsupported = errors.New("itemmem: mode unsupported for this codec")
)
