// Package cim implements the Continuous Item Memory: a monotone ladder of
// L hypervectors representing quantization levels, plus its precomputed
// (pIM) fusion with an Item Memory.
//
// A ladder is built from a flip-count vector B (length L-1) and a
// permutation of [0,D): level 0 is a hypervector deterministically seeded
// from a hash of the permutation, and each subsequent level flips the next
// Bᵢ positions named by the permutation. Two ladders built from identical
// (B, permutation) are byte-identical, which is what lets the genetic
// optimizer in package ga reconstruct a CiM from a genome alone.
package cim
