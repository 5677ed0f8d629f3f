// File: variation.go
// Role: crossover and the two mutation operators (Σ-preserving transfer,
// the GA's default, and the legacy independent random walk).

package ga

import "math/rand"

// crossover produces one offspring from two parents. With probability
// rate it mixes genes uniformly per-position from a and b; otherwise it
// copies a outright. This matches the documented "uniform per-gene
// selection from two parents; otherwise copy parent A" rule — the rate
// gates whether crossover happens at all, not the per-gene mixing
// probability within it.
func crossover(a, b *Individual, rate float64, rng *rand.Rand) *Individual {
	child := a.clone()
	if rng.Float64() >= rate {
		return child
	}
	for i := range child.B {
		if rng.Intn(2) == 1 {
			child.B[i] = b.B[i]
		}
	}
	return child
}

// mutateTransfer mutates child's genome in place using the Σ-preserving
// donor/receiver transfer: for each row (one independent ladder budget),
// walk its genes and, with probability rate per gene, move one flip from
// a randomly chosen positive donor gene in that row to a different
// randomly chosen receiver gene in the same row. Confining donor and
// receiver to the same row is what keeps each ladder's Σ ≤ K invariant
// exact rather than merely bounded in aggregate.
func mutateTransfer(child *Individual, features, levels int, rate float64, rng *rand.Rand) {
	rowLen := levels - 1
	for f := 0; f < features; f++ {
		row := child.B[f*rowLen : (f+1)*rowLen]
		for g := 0; g < rowLen; g++ {
			if rng.Float64() >= rate {
				continue
			}
			donors := positiveIndices(row)
			if len(donors) == 0 {
				continue
			}
			donor := donors[rng.Intn(len(donors))]
			receiver := rng.Intn(rowLen)
			if rowLen > 1 {
				for receiver == donor {
					receiver = rng.Intn(rowLen)
				}
			}
			row[donor]--
			row[receiver]++
		}
	}
}

// MutationRandomWalk is the legacy mutation variant: each gene
// independently takes a ±1 step with probability rate, clamped to
// [0, maxFlip]. Unlike mutateTransfer it does not preserve Σ genes per
// row, but it also cannot exceed the per-gene [0, maxFlip] bound, so it
// remains within the flip budget at the single-gene level even though the
// row total can drift. Kept for comparison against the primary transfer
// mutation; not selected by default.
func MutationRandomWalk(child *Individual, maxFlip int, rate float64, rng *rand.Rand) {
	for i := range child.B {
		if rng.Float64() >= rate {
			continue
		}
		step := -1
		if rng.Intn(2) == 1 {
			step = 1
		}
		v := child.B[i] + step
		if v < 0 {
			v = 0
		}
		if v > maxFlip {
			v = maxFlip
		}
		child.B[i] = v
	}
}

func positiveIndices(row []int) []int {
	out := make([]int, 0, len(row))
	for i, v := range row {
		if v > 0 {
			out = append(out, i)
		}
	}
	return out
}
