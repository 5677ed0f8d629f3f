// File: genome.go
// Role: the genome representation (one flip-count row per feature ladder)
// and its two initialization strategies (uniform random weights vs equal
// split), both producing rows that sum to exactly K, and the saturating
// clamp that holds offspring rows to Σ ≤ K.

package ga

import (
	"math"
	"math/rand"
)

// Individual is one candidate in the population: a flip-count genome (one
// row per feature ladder; a single row for the non-pIM case) plus the
// objective values and selection bookkeeping a generation fills in.
type Individual struct {
	B []int // flattened genome, length Rows*(Levels-1)

	Accuracy   float64
	Similarity float64
	Fitness    float64 // scalar fitness, meaningful for MULTI and ACCURACY modes
	Rank       int     // non-dominated front index, meaningful for PARETO mode
	Crowding   float64 // crowding distance within its front, meaningful for PARETO mode
}

// rows splits a flattened genome into one slice per feature ladder, each
// of length levels-1.
func (ind *Individual) rows(features, levels int) [][]int {
	rowLen := levels - 1
	out := make([][]int, features)
	for f := 0; f < features; f++ {
		out[f] = ind.B[f*rowLen : (f+1)*rowLen]
	}
	return out
}

// clone returns a deep copy, so crossover/mutation never alias a parent's
// backing array.
func (ind *Individual) clone() *Individual {
	b := append([]int(nil), ind.B...)
	return &Individual{B: b}
}

// newGenome draws one genome of length rowLen per feature row (features
// rows total), each row summing to at most k, using either a uniform
// random-weights split or an equal split.
func newGenome(features, rowLen, k int, uniformInit bool, rng *rand.Rand) []int {
	flat := make([]int, features*rowLen)
	for f := 0; f < features; f++ {
		row := flat[f*rowLen : (f+1)*rowLen]
		if uniformInit {
			initUniformRow(row, k, rng)
		} else {
			initEqualRow(row, k)
		}
	}
	return flat
}

// initUniformRow draws real weights in [0,1), normalizes them, assigns
// Bi = round(wi*k), then corrects the rounding remainder with random +1
// (or, where rounding overshot, -1) steps on random genes until the row
// sums to exactly k.
func initUniformRow(row []int, k int, rng *rand.Rand) {
	n := len(row)
	weights := make([]float64, n)
	var sum float64
	for i := range weights {
		weights[i] = rng.Float64()
		sum += weights[i]
	}
	if sum == 0 {
		sum = 1
	}
	assigned := 0
	for i := range row {
		v := int(math.Round(weights[i] / sum * float64(k)))
		row[i] = v
		assigned += v
	}
	for assigned < k {
		i := rng.Intn(n)
		row[i]++
		assigned++
	}
	for assigned > k {
		i := rng.Intn(n)
		if row[i] > 0 {
			row[i]--
			assigned--
		}
	}
}

// initEqualRow distributes k as evenly as possible across the row's
// genes, with any remainder going to the first genes.
func initEqualRow(row []int, k int) {
	n := len(row)
	base := k / n
	remainder := k % n
	for i := range row {
		row[i] = base
		if i < remainder {
			row[i]++
		}
	}
}

// clampRow saturates row so its sum never exceeds k, zeroing out genes
// from the end once the budget is exhausted. Run applies it to every
// offspring row: transfer mutation preserves a row's sum, but uniform
// crossover mixes genes from two parents and can produce a row whose sum
// exceeds k.
func clampRow(row []int, k int) {
	sum := 0
	for _, v := range row {
		if v < 0 {
			v = 0
		}
		sum += v
	}
	if sum <= k {
		for i, v := range row {
			if v < 0 {
				row[i] = 0
			}
		}
		return
	}
	excess := sum - k
	for i := len(row) - 1; i >= 0 && excess > 0; i-- {
		if row[i] < 0 {
			row[i] = 0
			continue
		}
		cut := row[i]
		if cut > excess {
			cut = excess
		}
		row[i] -= cut
		excess -= cut
	}
}
