// Package hdcconfig: sentinel error set.
package hdcconfig

import "errors"

var (
	// ErrConfigInvalid indicates an out-of-range or mutually inconsistent
	// knob (spec.md §7's ConfigInvalid category).
	ErrConfigInvalid = errors.New("hdcconfig: invalid configuration")
)
