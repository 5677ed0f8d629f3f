// Package hdcmetrics is the optional Prometheus instrumentation sink for
// the GA optimizer and the evaluator.
//
// Unlike tomtom215-cartographus's internal/metrics package, which
// registers every collector against the default registry as package-level
// globals, Recorder here is a constructed value that registers itself
// against a prometheus.Registerer supplied by the caller. A library meant
// to be embedded (and exercised repeatedly in tests, or instantiated more
// than once per process) can't share a single global registry without
// risking a duplicate-registration panic on the second instantiation; an
// injected Registerer sidesteps that entirely, the same way hdclog avoids
// a global logger.
package hdcmetrics
