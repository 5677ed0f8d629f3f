// Package hdclog builds an injected zerolog.Logger from a small Config
// (level, format, caller, timestamp) instead of the package-global
// singleton tomtom215-cartographus's own logging package exposes: this
// module's collaborators (trainer, evaluator, ga) are library code meant
// to be embedded in a caller's own process, so they take a *zerolog.Logger
// as an explicit, optional argument rather than reaching for global state.
package hdclog
