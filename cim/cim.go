// File: cim.go
// Role: ladder construction (uniform default and B-driven) and
// constant-time level lookup.

package cim

import (
	"math/rand"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// CiM is an ordered sequence of L hypervectors representing quantization
// levels, built as a monotone ladder: level 0 is random, each subsequent
// level is derived from its predecessor by flipping a batch of element
// positions named by a fixed permutation of [0,D).
type CiM struct {
	mode       hypervector.Mode
	dim        int
	levels     []*hypervector.HV
	b          []int // length L-1, flips applied per transition
	permutation []int
}

// N reports the number of levels L.
func (c *CiM) N() int { return len(c.levels) }

// Dim reports the hypervector dimension D.
func (c *CiM) Dim() int { return c.dim }

// Mode reports the representation mode shared by every level.
func (c *CiM) Mode() hypervector.Mode { return c.mode }

// B returns the flip-count vector (length L-1) that produced this ladder.
func (c *CiM) B() []int { return append([]int(nil), c.b...) }

// Permutation returns the flip-order permutation that produced this
// ladder.
func (c *CiM) Permutation() []int { return append([]int(nil), c.permutation...) }

// At returns the hypervector for quantization level l. Panics on
// out-of-range l: l comes from the encoder's quantizer, never raw user
// input.
func (c *CiM) At(l int) *hypervector.HV {
	if l < 0 || l >= len(c.levels) {
		panic("cim: At: level out of range")
	}
	return c.levels[l]
}

// validatePermutation checks that perm is a permutation of [0,dim).
func validatePermutation(perm []int, dim int) error {
	if len(perm) != dim {
		return ErrNotPermutation
	}
	seen := make([]bool, dim)
	for _, p := range perm {
		if p < 0 || p >= dim || seen[p] {
			return ErrNotPermutation
		}
		seen[p] = true
	}
	return nil
}

// buildLadder constructs levels from a fixed permutation and a cumulative
// target-flip sequence cumT of length L (cumT[0] must be 0, each entry
// nondecreasing and <= dim).
func buildLadder(mode hypervector.Mode, dim int, permutation []int, cumT []int) []*hypervector.HV {
	levels := make([]*hypervector.HV, len(cumT))

	seedRNG := rngForPermutation(permutation)
	level0 := hypervector.NewUninitialized(mode, dim)
	for i := 0; i < dim; i++ {
		switch mode {
		case hypervector.ModeBinary:
			level0.Set(i, seedRNG.Intn(2))
		default:
			if seedRNG.Intn(2) == 0 {
				level0.Set(i, -1)
			} else {
				level0.Set(i, 1)
			}
		}
	}
	levels[0] = level0

	prev := level0
	for l := 1; l < len(cumT); l++ {
		cur := prev.Clone()
		for _, idx := range permutation[cumT[l-1]:cumT[l]] {
			switch mode {
			case hypervector.ModeBinary:
				cur.FlipBinary(idx)
			default:
				cur.NegateBipolar(idx)
			}
		}
		levels[l] = cur
		prev = cur
	}
	return levels
}

// cumulativeFromB derives cumT (length len(b)+1, cumT[0]=0) from a flip
// vector b, clamping every partial sum to dim so cumulative flips never
// exceed the permutation's length — once the budget is exhausted, further
// levels stop accumulating new flips rather than re-flipping positions.
func cumulativeFromB(b []int, dim int) []int {
	cumT := make([]int, len(b)+1)
	for i, flips := range b {
		next := cumT[i] + flips
		if next > dim {
			next = dim
		}
		if next < cumT[i] {
			next = cumT[i]
		}
		cumT[i+1] = next
	}
	return cumT
}

// NewUniform builds the default equidistant ladder: L levels over
// dimension dim, with a total flip budget of K distributed so that level l
// targets cumulative flip count round(l*K/(L-1)). K is caller-supplied
// (never guessed here); callers choosing the reference default pass K=D.
// rng supplies the random permutation of [0,dim); the level-0 vector is
// then deterministically re-seeded from that permutation, not from rng
// directly, so the resulting CiM is reproducible from (B, permutation)
// alone.
func NewUniform(l, dim, k int, mode hypervector.Mode, rng *rand.Rand) (*CiM, error) {
	if l < 2 || dim <= 0 || k < 0 || rng == nil {
		return nil, ErrInvalidArgument
	}
	permutation := rng.Perm(dim)

	cumT := make([]int, l)
	for level := 0; level < l; level++ {
		t := int(roundHalfAwayFromZero(float64(level) * float64(k) / float64(l-1)))
		if t > dim {
			t = dim
		}
		if t < cumT[maxInt(level-1, 0)] {
			t = cumT[maxInt(level-1, 0)]
		}
		cumT[level] = t
	}

	b := make([]int, l-1)
	for i := 1; i < l; i++ {
		b[i-1] = cumT[i] - cumT[i-1]
	}

	levels := buildLadder(mode, dim, permutation, cumT)
	return &CiM{mode: mode, dim: dim, levels: levels, b: b, permutation: permutation}, nil
}

// NewFromB builds a ladder from an explicit flip vector b (length L-1,
// nonnegative) and permutation (a permutation of [0,dim)). Two calls with
// identical (b, permutation, mode, dim) produce byte-identical CiMs; this
// is the constructor the genetic optimizer uses to materialize a genome.
func NewFromB(b []int, permutation []int, mode hypervector.Mode, dim int) (*CiM, error) {
	if dim <= 0 || len(b) < 1 {
		return nil, ErrInvalidArgument
	}
	for _, flips := range b {
		if flips < 0 {
			return nil, ErrInvalidArgument
		}
	}
	if err := validatePermutation(permutation, dim); err != nil {
		return nil, err
	}

	cumT := cumulativeFromB(b, dim)
	levels := buildLadder(mode, dim, permutation, cumT)
	return &CiM{mode: mode, dim: dim, levels: levels, b: append([]int(nil), b...), permutation: append([]int(nil), permutation...)}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func roundHalfAwayFromZero(x float64) float64 {
	if x < 0 {
		return -roundHalfAwayFromZero(-x)
	}
	i := float64(int64(x))
	if x-i >= 0.5 {
		return i + 1
	}
	return i
}
