// SPDX-License-Identifier: MIT
// File: types.go
// Role: HV struct, Mode tag, constructors and element-level accessors.
// Policy: no algorithms here beyond constant-time reads/writes; bind,
// bundle, permute and similarity live in ops.go.

package hypervector

import (
	"fmt"
	"math/bits"
)

// Mode selects the representation (and therefore the algebra) of an HV.
type Mode int

const (
	// ModeBinary stores elements in {0,1}, packed as 64-bit words.
	ModeBinary Mode = iota
	// ModeBipolar stores elements in {-1,+1} (accumulators may exceed that
	// range in magnitude while being bundled; see Bundle/BundleMulti).
	ModeBipolar
)

// String renders the mode for logging and error messages.
func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeBipolar:
		return "bipolar"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// wordsFor returns the number of 64-bit words needed to pack dim bits.
func wordsFor(dim int) int {
	return (dim + 63) / 64
}

// HV is a fixed-dimension hypervector. The representation backing it
// depends on Mode: Bits holds packed binary elements (element i in word i/64, bit i%64);
// Vals holds bipolar elements one int32 per dimension. Only one of the two
// slices is populated, matching the mode.
//
// HV values are owned, contiguous buffers: there are no back-references.
// Any cross-referencing (e.g. "level 3 of this CiM") is done by index into
// a slice owned by the caller, never by embedding pointers into HV itself.
type HV struct {
	mode Mode
	dim  int
	bits []uint64 // populated iff mode == ModeBinary, len == wordsFor(dim)
	vals []int32  // populated iff mode == ModeBipolar, len == dim
}

// New allocates a zeroed HV of the given mode and dimension: all-zero bits
// for ModeBinary, all -1 for ModeBipolar — matching the initialization the
// reference HDC implementation performs in create_vector().
//
// Panics if dim <= 0 (a programmer error: dimension is a fixed, compile-time
// configuration knob, never user input).
func New(mode Mode, dim int) *HV {
	if dim <= 0 {
		panic("hypervector: New: dimension must be > 0")
	}
	v := &HV{mode: mode, dim: dim}
	switch mode {
	case ModeBinary:
		v.bits = make([]uint64, wordsFor(dim))
	case ModeBipolar:
		v.vals = make([]int32, dim)
		for i := range v.vals {
			v.vals[i] = -1
		}
	default:
		panic("hypervector: New: unknown mode")
	}
	return v
}

// NewUninitialized allocates an HV without assigning element values beyond
// Go's zero value (all-zero bits, all-zero int32s). Callers must populate it
// before use; this mirrors create_uninitialized_vector() in the reference
// implementation, used by constructors that immediately overwrite every
// element anyway.
func NewUninitialized(mode Mode, dim int) *HV {
	if dim <= 0 {
		panic("hypervector: NewUninitialized: dimension must be > 0")
	}
	v := &HV{mode: mode, dim: dim}
	switch mode {
	case ModeBinary:
		v.bits = make([]uint64, wordsFor(dim))
	case ModeBipolar:
		v.vals = make([]int32, dim)
	default:
		panic("hypervector: NewUninitialized: unknown mode")
	}
	return v
}

// Mode reports the vector's representation mode.
func (v *HV) Mode() Mode { return v.mode }

// Dim reports the vector's dimension D.
func (v *HV) Dim() int { return v.dim }

// Clone returns a deep, independent copy of v.
func (v *HV) Clone() *HV {
	out := &HV{mode: v.mode, dim: v.dim}
	if v.bits != nil {
		out.bits = append([]uint64(nil), v.bits...)
	}
	if v.vals != nil {
		out.vals = append([]int32(nil), v.vals...)
	}
	return out
}

// At returns the logical value of element i: 0/1 for ModeBinary, -1/+1 (or
// a larger magnitude for an unthresholded bipolar accumulator) for
// ModeBipolar. Panics on out-of-range i (programmer error; hot path).
func (v *HV) At(i int) int {
	if i < 0 || i >= v.dim {
		panic("hypervector: At: index out of range")
	}
	switch v.mode {
	case ModeBinary:
		word := v.bits[i/64]
		if word&(uint64(1)<<(uint(i)%64)) != 0 {
			return 1
		}
		return 0
	default: // ModeBipolar
		return int(v.vals[i])
	}
}

// Set assigns the logical value of element i. For ModeBinary, val is
// truthy as any nonzero value. For ModeBipolar, val is stored verbatim
// (callers doing raw bit-flip construction pass ±1; bundling accumulators
// may pass larger magnitudes transiently).
func (v *HV) Set(i int, val int) {
	if i < 0 || i >= v.dim {
		panic("hypervector: Set: index out of range")
	}
	switch v.mode {
	case ModeBinary:
		w := i / 64
		bit := uint64(1) << (uint(i) % 64)
		if val != 0 {
			v.bits[w] |= bit
		} else {
			v.bits[w] &^= bit
		}
	default: // ModeBipolar
		v.vals[i] = int32(val)
	}
}

// FlipBinary toggles element i in place; only valid for ModeBinary vectors
// (used by the continuous item memory ladder construction, which flips
// exactly B_i positions between adjacent levels).
func (v *HV) FlipBinary(i int) {
	if v.mode != ModeBinary {
		panic("hypervector: FlipBinary: not a binary vector")
	}
	if i < 0 || i >= v.dim {
		panic("hypervector: FlipBinary: index out of range")
	}
	v.bits[i/64] ^= uint64(1) << (uint(i) % 64)
}

// NegateBipolar negates element i in place; only valid for ModeBipolar
// vectors (the bipolar analogue of FlipBinary for ladder construction).
func (v *HV) NegateBipolar(i int) {
	if v.mode != ModeBipolar {
		panic("hypervector: NegateBipolar: not a bipolar vector")
	}
	if i < 0 || i >= v.dim {
		panic("hypervector: NegateBipolar: index out of range")
	}
	v.vals[i] = -v.vals[i]
}

// Equal reports whether v and other have the same mode, dimension and
// element values.
func (v *HV) Equal(other *HV) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.mode != other.mode || v.dim != other.dim {
		return false
	}
	switch v.mode {
	case ModeBinary:
		for i, w := range v.bits {
			if w != other.bits[i] {
				return false
			}
		}
		return true
	default:
		for i, x := range v.vals {
			if x != other.vals[i] {
				return false
			}
		}
		return true
	}
}

// String renders a short, human-readable prefix of the vector (at most the
// first 16 elements), suitable for debug logs — never the full D elements,
// which would flood any log sink.
func (v *HV) String() string {
	n := v.dim
	if n > 16 {
		n = 16
	}
	buf := make([]byte, 0, n*3+8)
	buf = append(buf, v.mode.String()...)
	buf = append(buf, '[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, fmt.Sprintf("%d", v.At(i))...)
	}
	if v.dim > n {
		buf = append(buf, []byte(" ...")...)
	}
	buf = append(buf, ']')
	return string(buf)
}

// popcount64 counts set bits; factored out so ops.go stays focused on
// algebra rather than bit tricks.
func popcount64(x uint64) int { return bits.OnesCount64(x) }
