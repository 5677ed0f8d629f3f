// File: assocmem.go
// Role: class prototypes, add/classify/normalize.

package assocmem

import "github.com/marianhorn/HDC-Assymetric-CiM/hypervector"

// AssocMem holds one prototype hypervector and one sample count per class.
type AssocMem struct {
	mode              hypervector.Mode
	dim               int
	k                 int
	cutAngleThreshold float64

	proto []*hypervector.HV
	count []int
}

// New allocates an empty AssocMem for k classes of the given mode and
// dimension. cutAngleThreshold is consulted only in bipolar mode's Add.
func New(k, dim int, mode hypervector.Mode, cutAngleThreshold float64) (*AssocMem, error) {
	if k <= 0 || dim <= 0 {
		return nil, ErrInvalidArgument
	}
	return &AssocMem{
		mode:              mode,
		dim:               dim,
		k:                 k,
		cutAngleThreshold: cutAngleThreshold,
		proto:             make([]*hypervector.HV, k),
		count:             make([]int, k),
	}, nil
}

// K reports the class count.
func (m *AssocMem) K() int { return m.k }

// Mode reports the representation mode every prototype shares, which
// selects the incremental-bipolar vs. bulk-binary update rule Trainer
// applies.
func (m *AssocMem) Mode() hypervector.Mode { return m.mode }

// Count reports how many Add calls were accepted for class c.
func (m *AssocMem) Count(c int) (int, error) {
	if c < 0 || c >= m.k {
		return 0, ErrClassOutOfRange
	}
	return m.count[c], nil
}

// Add records hv under class cls.
//
// Bipolar: the first sample for a class is adopted verbatim as the
// prototype. Afterward, hv is bundled in only if its similarity to the
// current prototype is below cutAngleThreshold; otherwise it is skipped
// and accepted is false.
//
// Binary: majority-vote bundling cannot be done incrementally, so Add
// simply overwrites the prototype with hv and resets count to 1; bulk
// bundling across a class's full sample set is Trainer's responsibility.
func (m *AssocMem) Add(hv *hypervector.HV, cls int) (accepted bool, err error) {
	if cls < 0 || cls >= m.k {
		return false, ErrClassOutOfRange
	}
	if hv == nil {
		return false, ErrInvalidArgument
	}

	switch m.mode {
	case hypervector.ModeBinary:
		m.proto[cls] = hv.Clone()
		m.count[cls] = 1
		return true, nil
	default: // ModeBipolar
		if m.count[cls] == 0 {
			m.proto[cls] = hv.Clone()
			m.count[cls] = 1
			return true, nil
		}
		sim, err := hypervector.Similarity(m.proto[cls], hv)
		if err != nil {
			return false, err
		}
		if sim >= m.cutAngleThreshold {
			return false, nil
		}
		bundled, err := hypervector.Bundle(m.proto[cls], hv)
		if err != nil {
			return false, err
		}
		m.proto[cls] = bundled
		m.count[cls]++
		return true, nil
	}
}

// SetClassVector installs proto directly as class c's prototype with the
// given sample count, for Trainer's bulk binary-bundling path where the
// final prototype is computed from a whole group of HVs at once rather
// than incrementally via Add.
func (m *AssocMem) SetClassVector(c int, proto *hypervector.HV, count int) error {
	if c < 0 || c >= m.k {
		return ErrClassOutOfRange
	}
	if proto == nil || count < 0 {
		return ErrInvalidArgument
	}
	m.proto[c] = proto
	m.count[c] = count
	return nil
}

// Classify returns the class whose prototype has maximal similarity to
// hv, breaking ties toward the lowest class index. Classes with zero
// samples are not considered. Returns ErrEmpty if no class has any
// samples.
func (m *AssocMem) Classify(hv *hypervector.HV) (int, error) {
	class, _, err := m.ClassifyWithConfidence(hv)
	return class, err
}

// ClassifyWithConfidence is Classify, additionally returning the winning
// similarity score. Evaluator's sliding-window mode uses the score to
// pick the most confident n-gram within a larger window.
func (m *AssocMem) ClassifyWithConfidence(hv *hypervector.HV) (class int, confidence float64, err error) {
	best := -1
	bestSim := 0.0
	for c := 0; c < m.k; c++ {
		if m.count[c] == 0 {
			continue
		}
		sim, err := hypervector.Similarity(m.proto[c], hv)
		if err != nil {
			return 0, 0, err
		}
		if best == -1 || sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if best == -1 {
		return 0, 0, ErrEmpty
	}
	return best, bestSim, nil
}

// GetClassVector returns class c's current prototype.
func (m *AssocMem) GetClassVector(c int) (*hypervector.HV, error) {
	if c < 0 || c >= m.k {
		return nil, ErrClassOutOfRange
	}
	return m.proto[c], nil
}

// Normalize divides every bipolar prototype's elements by its class
// count, in place. Bipolar only, meant to be invoked once after training
// when the NORMALIZE knob is set.
func (m *AssocMem) Normalize() error {
	if m.mode != hypervector.ModeBipolar {
		return ErrNormalizeBinaryMode
	}
	for c := 0; c < m.k; c++ {
		if m.count[c] == 0 || m.proto[c] == nil {
			continue
		}
		n := m.count[c]
		v := m.proto[c]
		for i := 0; i < m.dim; i++ {
			v.Set(i, v.At(i)/n)
		}
	}
	return nil
}
