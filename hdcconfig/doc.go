// Package hdcconfig loads the configuration surface spec.md §6
// enumerates — vector dimension, feature/class/level counts, the
// quantizer domain, temporal and evaluation window sizes, the bipolar/
// binary and precomputed-item-memory switches, and the GA knobs — from
// three layered sources in increasing priority: built-in defaults, an
// optional YAML file, then environment variables prefixed HDC_. This
// mirrors the layered-precedence pattern tomtom215-cartographus's
// internal/config package uses, scaled down to this module's much
// smaller knob set.
package hdcconfig
