// File: trainer.go
// Role: Train dispatches to the bipolar incremental path or the binary
// bulk-bundling path according to the target AssocMem's mode; TrainGeneral
// is the non-temporal counterpart of both.

package trainer

import (
	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/encoder"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// Train fills mem from data[T][F]/labels[T] using encoder-windowed n-gram
// samples: the bipolar incremental path for a bipolar mem, the binary
// bulk-bundling path for a binary one. normalize invokes mem.Normalize
// once at the end (bipolar only; ignored for binary).
func Train(enc *encoder.Encoder, mem *assocmem.AssocMem, data [][]float64, labels []int, normalize bool, opts ...Option) error {
	if len(data) != len(labels) {
		return ErrLengthMismatch
	}
	var err error
	if mem.Mode() == hypervector.ModeBipolar {
		err = trainBipolar(enc, mem, data, labels, normalize)
	} else {
		err = trainBinaryBulk(enc, mem, data, labels)
	}
	if err != nil {
		return err
	}
	resolveOptions(opts).logRun("train", len(data), mem)
	return nil
}

// trainBipolar implements spec.md §4.G's bipolar path: for every window
// start j in [0, T-n), encode the window and add it under labels[j] if
// the window is label-stable.
func trainBipolar(enc *encoder.Encoder, mem *assocmem.AssocMem, data [][]float64, labels []int, normalize bool) error {
	n := enc.NGramSize()
	t := len(data)
	for j := 0; j+n < t; j++ {
		stable, err := encoder.IsWindowStable(labels[j : j+n])
		if err != nil {
			return err
		}
		if !stable {
			continue
		}
		hv, err := enc.EncodeTimeseries(data[j : j+n])
		if err != nil {
			return err
		}
		if err := addChecked(mem, hv, labels[j]); err != nil {
			return err
		}
	}
	if normalize {
		return mem.Normalize()
	}
	return nil
}

// trainBinaryBulk implements spec.md §4.G's binary bulk path: stable
// windows are grouped by class while scanning, then each class's group is
// majority-bundled in one bundle_multi call. When is_window_stable fails
// at position j, the scan skips ahead by n-1, since the next overlapping
// window cannot be stable until a boundary clears.
func trainBinaryBulk(enc *encoder.Encoder, mem *assocmem.AssocMem, data [][]float64, labels []int) error {
	n := enc.NGramSize()
	t := len(data)
	k := mem.K()
	groups := make([][]*hypervector.HV, k)

	for j := 0; j+n <= t; {
		stable, err := encoder.IsWindowStable(labels[j : j+n])
		if err != nil {
			return err
		}
		if !stable {
			j += n - 1
			continue
		}
		hv, err := enc.EncodeTimeseries(data[j : j+n])
		if err != nil {
			return err
		}
		cls := labels[j]
		if cls < 0 || cls >= k {
			return ErrClassOutOfRange
		}
		groups[cls] = append(groups[cls], hv)
		j++
	}
	return commitGroups(mem, groups)
}

// TrainRolling is the binary rolling variant: it streams samples through a
// single RollingEncoder, accumulating per-bit vote counts per class
// instead of retaining every window's hypervector, then thresholds each
// class's counts at count[c]/2 to produce its prototype. mem must be
// binary mode.
func TrainRolling(enc *encoder.Encoder, mem *assocmem.AssocMem, data [][]float64, labels []int, opts ...Option) error {
	if len(data) != len(labels) {
		return ErrLengthMismatch
	}
	if mem.Mode() != hypervector.ModeBinary {
		return ErrRollingRequiresBinary
	}
	n := enc.NGramSize()
	dim := enc.Dim()
	k := mem.K()

	bitCounts := make([][]int, k)
	sampleCounts := make([]int, k)
	for c := range bitCounts {
		bitCounts[c] = make([]int, dim)
	}

	roller := encoder.NewRolling(enc)
	for i, sample := range data {
		hv, ready, err := roller.Push(sample)
		if err != nil {
			return err
		}
		if !ready {
			continue
		}
		start := i - n + 1
		stable, err := encoder.IsWindowStable(labels[start : i+1])
		if err != nil {
			return err
		}
		if !stable {
			continue
		}
		cls := labels[start]
		if cls < 0 || cls >= k {
			return ErrClassOutOfRange
		}
		for b := 0; b < dim; b++ {
			if hv.At(b) == 1 {
				bitCounts[cls][b]++
			}
		}
		sampleCounts[cls]++
	}

	for c := 0; c < k; c++ {
		if sampleCounts[c] == 0 {
			continue
		}
		proto := hypervector.NewUninitialized(hypervector.ModeBinary, dim)
		threshold := sampleCounts[c] / 2
		for b := 0; b < dim; b++ {
			if bitCounts[c][b] > threshold {
				proto.Set(b, 1)
			}
		}
		if err := mem.SetClassVector(c, proto, sampleCounts[c]); err != nil {
			return err
		}
	}
	resolveOptions(opts).logRun("train_rolling", len(data), mem)
	return nil
}

// TrainGeneral is train_general: no temporal context, every row is
// encoded via EncodeSample and added/grouped directly, using the same
// bipolar-incremental-vs-binary-bulk split as Train.
func TrainGeneral(enc *encoder.Encoder, mem *assocmem.AssocMem, data [][]float64, labels []int, normalize bool, opts ...Option) error {
	if len(data) != len(labels) {
		return ErrLengthMismatch
	}
	if mem.Mode() == hypervector.ModeBipolar {
		for i, sample := range data {
			hv, err := enc.EncodeSample(sample)
			if err != nil {
				return err
			}
			if err := addChecked(mem, hv, labels[i]); err != nil {
				return err
			}
		}
		if normalize {
			if err := mem.Normalize(); err != nil {
				return err
			}
		}
		resolveOptions(opts).logRun("train_general", len(data), mem)
		return nil
	}

	k := mem.K()
	groups := make([][]*hypervector.HV, k)
	for i, sample := range data {
		hv, err := enc.EncodeSample(sample)
		if err != nil {
			return err
		}
		cls := labels[i]
		if cls < 0 || cls >= k {
			return ErrClassOutOfRange
		}
		groups[cls] = append(groups[cls], hv)
	}
	if err := commitGroups(mem, groups); err != nil {
		return err
	}
	resolveOptions(opts).logRun("train_general", len(data), mem)
	return nil
}

func addChecked(mem *assocmem.AssocMem, hv *hypervector.HV, cls int) error {
	if cls < 0 || cls >= mem.K() {
		return ErrClassOutOfRange
	}
	_, err := mem.Add(hv, cls)
	return err
}

func commitGroups(mem *assocmem.AssocMem, groups [][]*hypervector.HV) error {
	for c, group := range groups {
		if len(group) == 0 {
			continue
		}
		proto, err := hypervector.BundleMulti(group)
		if err != nil {
			return err
		}
		if err := mem.SetClassVector(c, proto, len(group)); err != nil {
			return err
		}
	}
	return nil
}
