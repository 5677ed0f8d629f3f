// File: codec.go
// Role: thin adapters onto itemmem's shared CSV/packed-bitstring codecs,
// ordering rows level-major (row_index = level*F + feature) for
// Precomputed tables and level-major alone for a plain ladder.

package cim

import (
	"io"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
)

// StoreCSV writes the ladder's levels in order, one row per level.
func (c *CiM) StoreCSV(w io.Writer) error {
	meta := itemmem.Metadata{NumLevels: len(c.levels), Dimension: c.dim}
	return itemmem.WriteCSV(w, c.levels, meta)
}

// LoadCSV reads a ladder written by StoreCSV. The returned CiM has no B or
// permutation of its own (those are not recoverable from the row data
// alone); B() and Permutation() return nil for a loaded ladder.
func LoadCSV(r io.Reader) (*CiM, error) {
	vecs, meta, err := itemmem.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, itemmem.ErrIOFormat
	}
	return &CiM{mode: vecs[0].Mode(), dim: meta.Dimension, levels: vecs}, nil
}

// StoreCSV writes the fused table in level-major order: row_index =
// level*F + feature.
func (p *Precomputed) StoreCSV(w io.Writer) error {
	meta := itemmem.Metadata{NumLevels: p.levels, NumFeatures: p.features, Dimension: p.dim}
	return itemmem.WriteCSV(w, p.fused, meta)
}

// LoadPrecomputedCSV reads a fused table written by Precomputed.StoreCSV.
// The returned Precomputed has no per-feature ladders (those are not
// recoverable from the fused rows alone); Ladder panics on it.
func LoadPrecomputedCSV(r io.Reader) (*Precomputed, error) {
	vecs, meta, err := itemmem.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	if meta.NumLevels == 0 || meta.NumFeatures == 0 {
		return nil, itemmem.ErrIOFormat
	}
	if len(vecs) != meta.NumLevels*meta.NumFeatures {
		return nil, itemmem.ErrIOFormat
	}
	var mode hypervector.Mode
	if len(vecs) > 0 {
		mode = vecs[0].Mode()
	}
	return &Precomputed{mode: mode, dim: meta.Dimension, levels: meta.NumLevels, features: meta.NumFeatures, fused: vecs}, nil
}
