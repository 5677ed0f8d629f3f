// Package ga evolves a CiM (or per-feature pIM) flip-count genome by
// training and evaluating an HDC model for each candidate. Selection is
// NSGA-II Pareto (accuracy vs inter-class similarity), a scalarized
// accuracy-minus-similarity score, or accuracy alone. Mutation is a
// Σ-preserving donor/receiver transfer by default; a legacy independent
// ±1 random walk is offered as a non-default alternative. Fitness
// evaluations within one generation fan out across a worker pool and join
// before the next generation's selection and variation, which consume the
// RNG serially so the winning genome does not depend on the pool size.
package ga
