// Package ga: sentinel error set.
package ga

import "errors"

var (
	// ErrConfigInvalid indicates an out-of-range GA knob (population size,
	// generation count, rates outside [0,1], tournament size, etc.).
	ErrConfigInvalid = errors.New("ga: invalid configuration")

	// ErrNoTrainingData indicates the Problem supplied no training split.
	ErrNoTrainingData = errors.New("ga: no training data")

	// ErrFitnessFailed indicates a fitness sub-evaluation returned an
	// error; the GA does not swallow this, the generation aborts.
	ErrFitnessFailed = errors.New("ga: fitness evaluation failed")
)
