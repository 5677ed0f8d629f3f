// File: itemmem.go
// Role: IM construction and constant-time lookup. No mutation after
// construction: there is no public setter, only Random/Load and At.

package itemmem

import (
	"io"
	"math/rand"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// IM is an ordered, immutable sequence of N independently-random
// hypervectors, one per feature index. Pairwise similarity between any two
// rows concentrates near zero by construction.
type IM struct {
	mode hypervector.Mode
	dim  int
	vecs []*hypervector.HV
}

// Random samples N independent HVs of the given mode and dimension using
// rng. Each element is drawn uniformly from the representation's alphabet
// ({0,1} for ModeBinary, {-1,+1} for ModeBipolar).
func Random(n, dim int, mode hypervector.Mode, rng *rand.Rand) (*IM, error) {
	if n <= 0 || dim <= 0 {
		return nil, ErrInvalidArgument
	}
	if rng == nil {
		return nil, ErrInvalidArgument
	}
	vecs := make([]*hypervector.HV, n)
	for f := 0; f < n; f++ {
		v := hypervector.NewUninitialized(mode, dim)
		for i := 0; i < dim; i++ {
			switch mode {
			case hypervector.ModeBinary:
				v.Set(i, rng.Intn(2))
			default:
				if rng.Intn(2) == 0 {
					v.Set(i, -1)
				} else {
					v.Set(i, 1)
				}
			}
		}
		vecs[f] = v
	}
	return &IM{mode: mode, dim: dim, vecs: vecs}, nil
}

// N reports the number of feature rows.
func (m *IM) N() int { return len(m.vecs) }

// Dim reports the hypervector dimension D.
func (m *IM) Dim() int { return m.dim }

// Mode reports the representation mode shared by every row.
func (m *IM) Mode() hypervector.Mode { return m.mode }

// At returns the hypervector assigned to feature f. Panics on out-of-range
// f: f is a compile-time-fixed feature index, never user input.
func (m *IM) At(f int) *hypervector.HV {
	if f < 0 || f >= len(m.vecs) {
		panic("itemmem: At: index out of range")
	}
	return m.vecs[f]
}

// Store writes m in the commented CSV form described by Metadata.
func (m *IM) Store(w io.Writer) error {
	meta := Metadata{NumVectors: len(m.vecs), NumFeatures: len(m.vecs), Dimension: m.dim}
	return WriteCSV(w, m.vecs, meta)
}

// Load reads an IM previously written by Store (or an equivalent external
// producer) from its commented CSV form.
func Load(r io.Reader) (*IM, error) {
	vecs, meta, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, ErrIOFormat
	}
	return &IM{mode: vecs[0].Mode(), dim: meta.Dimension, vecs: vecs}, nil
}
