// File: rng.go
// Role: splits one configured seed into named, independent sub-streams
// (init, permutation, crossover, mutation, tournament) by xor-mixing fixed
// salts into the seed before feeding a SplitMix64-style finalizer. Reuses
// the mixing technique cim/rng.go already carries (itself grounded on the
// deleted teacher file tsp/rng.go), rather than a new scheme, so the whole
// module derives reproducible RNG streams the same way end to end.

package ga

import "math/rand"

const (
	saltInit        uint64 = 0x5A17_494E_4954_0001
	saltPermutation uint64 = 0x5A17_5045_524D_0002
	saltCrossover   uint64 = 0x5A17_4352_4F53_0003
	saltMutation    uint64 = 0x5A17_4D55_5441_0004
	saltTournament  uint64 = 0x5A17_544F_5552_0005
)

// splitMix64 advances the SplitMix64 generator one step and returns the
// next 64-bit output.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// subStream returns a deterministic RNG for one named concern, derived
// from the run's seed and a fixed salt. Two runs with the same seed
// produce byte-identical streams for each concern regardless of call
// order across concerns (each stream is independent), which is what lets
// the fitness fan-out run on any worker-pool size without perturbing
// selection/variation.
func subStream(seed uint64, salt uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(splitMix64(seed ^ salt))))
}
