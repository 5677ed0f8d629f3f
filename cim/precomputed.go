// File: precomputed.go
// Role: the precomputed item memory (pIM): one independent ladder per
// feature, each fused with that feature's IM row so encoding a timestamp
// skips the per-feature bind.

package cim

import (
	"math/rand"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
)

// Precomputed stores, for every (level, feature) pair, the already-bound
// hypervector IM[f] (+) CiMf[level]. When present, encoding never consults
// IM or CiM directly.
type Precomputed struct {
	mode     hypervector.Mode
	dim      int
	levels   int
	features int
	fused    []*hypervector.HV // row_index = level*features + feature
	ladders  []*CiM            // one independent ladder per feature
}

// Levels reports the level count L.
func (p *Precomputed) Levels() int { return p.levels }

// Features reports the feature count F.
func (p *Precomputed) Features() int { return p.features }

// Dim reports the hypervector dimension D.
func (p *Precomputed) Dim() int { return p.dim }

// At returns the fused hypervector for (level, feature). Panics on
// out-of-range arguments: both come from the encoder's quantizer and
// static feature indexing, never raw user input.
func (p *Precomputed) At(level, feature int) *hypervector.HV {
	if level < 0 || level >= p.levels || feature < 0 || feature >= p.features {
		panic("cim: Precomputed.At: index out of range")
	}
	return p.fused[level*p.features+feature]
}

// Ladder returns the independent CiM ladder backing feature f, primarily
// for inspection and testing.
func (p *Precomputed) Ladder(f int) *CiM {
	if f < 0 || f >= len(p.ladders) {
		panic("cim: Precomputed.Ladder: index out of range")
	}
	return p.ladders[f]
}

// NewPrecomputedUniform builds F independent uniform ladders (one per IM
// row) and fuses each with its IM row via Bind, consuming rng serially,
// feature by feature, so the result is reproducible for a fixed rng
// stream.
func NewPrecomputedUniform(im *itemmem.IM, l, k int, rng *rand.Rand) (*Precomputed, error) {
	if im == nil || rng == nil {
		return nil, ErrInvalidArgument
	}
	f := im.N()
	dim := im.Dim()

	ladders := make([]*CiM, f)
	fused := make([]*hypervector.HV, l*f)
	for feature := 0; feature < f; feature++ {
		ladder, err := NewUniform(l, dim, k, im.Mode(), rng)
		if err != nil {
			return nil, err
		}
		ladders[feature] = ladder
		for level := 0; level < l; level++ {
			bound, err := hypervector.Bind(im.At(feature), ladder.At(level))
			if err != nil {
				return nil, err
			}
			fused[level*f+feature] = bound
		}
	}
	return &Precomputed{mode: im.Mode(), dim: dim, levels: l, features: f, fused: fused, ladders: ladders}, nil
}

// NewPrecomputedFromB builds F independent ladders from per-feature flip
// rows and permutations (bRows[f], permutations[f]) and fuses each with
// its IM row. This is the constructor the genetic optimizer uses when a
// genome encodes one ladder per feature.
func NewPrecomputedFromB(im *itemmem.IM, bRows [][]int, permutations [][]int) (*Precomputed, error) {
	if im == nil {
		return nil, ErrInvalidArgument
	}
	f := im.N()
	if len(bRows) != f || len(permutations) != f {
		return nil, ErrLengthMismatch
	}
	dim := im.Dim()
	l := len(bRows[0]) + 1

	ladders := make([]*CiM, f)
	fused := make([]*hypervector.HV, l*f)
	for feature := 0; feature < f; feature++ {
		ladder, err := NewFromB(bRows[feature], permutations[feature], im.Mode(), dim)
		if err != nil {
			return nil, err
		}
		if ladder.N() != l {
			return nil, ErrLengthMismatch
		}
		ladders[feature] = ladder
		for level := 0; level < l; level++ {
			bound, err := hypervector.Bind(im.At(feature), ladder.At(level))
			if err != nil {
				return nil, err
			}
			fused[level*f+feature] = bound
		}
	}
	return &Precomputed{mode: im.Mode(), dim: dim, levels: l, features: f, fused: fused, ladders: ladders}, nil
}
