// File: rng.go
// Role: derives the level-0 seed deterministically from a permutation, so
// a CiM ladder is fully reconstructible from (B, permutation) alone. The
// mixing technique (a 64-bit accumulator folded through a SplitMix64-style
// finalizer) follows the seed-splitting idiom used elsewhere in this
// module's ancestry for independent, reproducible RNG sub-streams.

package cim

import "math/rand"

// splitMix64 advances the SplitMix64 generator one step and returns the
// next 64-bit output.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// seedFromPermutation folds a permutation into a single 64-bit seed: each
// element is mixed into a running accumulator via SplitMix64, so any
// change to the permutation (including a reordering) changes the seed.
func seedFromPermutation(permutation []int) uint64 {
	acc := uint64(0xD1B54A32D192ED03)
	for i, p := range permutation {
		acc = splitMix64(acc ^ uint64(p) ^ (uint64(i) << 32))
	}
	return acc
}

// rngForPermutation returns the deterministic RNG stream used to sample
// the ladder's level-0 hypervector.
func rngForPermutation(permutation []int) *rand.Rand {
	return rand.New(rand.NewSource(int64(seedFromPermutation(permutation))))
}
