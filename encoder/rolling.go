// File: rolling.go
// Role: the optional rolling encoder — one HV per input sample after an
// (n-1)-sample warm-up, algebraically identical to re-running
// EncodeTimeseries over the trailing n-sample window at every step, but
// computed incrementally in O(D) per sample instead of O(n*D).
//
// Derivation: maintaining an accumulator R and permuting it by 1 on every
// step ages every resident term's rotation exponent by 1 for free (cyclic
// permutation distributes over XOR/elementwise-multiply binding). Only two
// corrections are then needed per step: XOR in the newest raw spatial HV
// at exponent 0, and — once the window is full — XOR out the oldest raw
// spatial HV rotated by exactly n, which cancels the stale term that
// aged past the window.
//
// The cancellation relies on binding being self-inverse, which holds in
// ModeBinary (XOR). In ModeBipolar the spatial HVs are unthresholded
// bundle sums whose elements can exceed ±1 in magnitude, so binding the
// leaving term a second time does not remove it, and the output differs
// from EncodeTimeseries once more than n samples have been pushed.

package encoder

import "github.com/marianhorn/HDC-Assymetric-CiM/hypervector"

// RollingEncoder streams samples through the n-gram encoding one at a
// time, producing output only once the window has filled.
type RollingEncoder struct {
	enc *Encoder
	n   int
	ring []*hypervector.HV // raw (unrotated) spatial HVs, most recent n
	acc  *hypervector.HV
	seen int
}

// NewRolling starts a fresh rolling encoder over enc's configured n-gram
// size.
func NewRolling(enc *Encoder) *RollingEncoder {
	return &RollingEncoder{
		enc:  enc,
		n:    enc.nGram,
		ring: make([]*hypervector.HV, enc.nGram),
	}
}

// Push feeds one sample. ready is false for the first n-1 calls (warm-up);
// from the n-th call onward it returns, in ModeBinary, the same hypervector
// EncodeTimeseries would produce for the trailing n-sample window (see the
// file header for ModeBipolar).
func (r *RollingEncoder) Push(sample []float64) (hv *hypervector.HV, ready bool, err error) {
	raw, err := r.enc.encodeSpatial(sample)
	if err != nil {
		return nil, false, err
	}

	if r.seen == 0 {
		r.acc = raw
	} else {
		shifted := hypervector.Permute(r.acc, 1)
		bound, err := hypervector.Bind(shifted, raw)
		if err != nil {
			return nil, false, err
		}
		r.acc = bound
	}

	slot := r.seen % r.n
	if r.seen >= r.n {
		leaving := hypervector.Permute(r.ring[slot], r.n)
		bound, err := hypervector.Bind(r.acc, leaving)
		if err != nil {
			return nil, false, err
		}
		r.acc = bound
	}
	r.ring[slot] = raw
	r.seen++

	ready = r.seen >= r.n
	if !ready {
		return nil, false, nil
	}
	return r.acc, true, nil
}

// Reset clears warm-up state so the next Push starts a fresh window.
func (r *RollingEncoder) Reset() {
	r.ring = make([]*hypervector.HV, r.n)
	r.acc = nil
	r.seen = 0
}
