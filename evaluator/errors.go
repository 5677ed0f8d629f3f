// Package evaluator: sentinel error set.
package evaluator

import "errors"

var (
	// ErrLengthMismatch indicates data and labels have different lengths.
	ErrLengthMismatch = errors.New("evaluator: data and labels length mismatch")

	// ErrInvalidArgument indicates a non-positive WINDOW, or a WINDOW
	// smaller than the encoder's n-gram size.
	ErrInvalidArgument = errors.New("evaluator: invalid argument")

	// ErrClassOutOfRange indicates a label fell outside [0, K).
	ErrClassOutOfRange = errors.New("evaluator: label out of class range")
)
