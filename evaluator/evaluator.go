// File: evaluator.go
// Role: the three evaluation modes and the shared Result aggregation
// (confusion matrix, overall/class-average accuracy, mean inter-class
// similarity).

package evaluator

import (
	"sort"

	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/encoder"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// Result aggregates one evaluation run. Total is the denominator used for
// OverallAccuracy, and is computed per mode (see the Evaluate* doc
// comments): direct n-gram and general use Correct+NotCorrect+
// TransitionError; sliding window uses Correct+NotCorrect over the
// windows actually evaluated.
type Result struct {
	Confusion                [][]int // Confusion[trueClass][predictedClass]
	Correct                  int
	NotCorrect               int
	TransitionError          int
	Total                    int
	OverallAccuracy          float64
	ClassAverageAccuracy     float64
	MeanInterClassSimilarity float64
}

func newResult(k int) *Result {
	confusion := make([][]int, k)
	for i := range confusion {
		confusion[i] = make([]int, k)
	}
	return &Result{Confusion: confusion}
}

// finalize computes the three summary statistics once Correct/NotCorrect/
// TransitionError/Confusion have been populated by a caller-specific loop.
func (r *Result) finalize(mem *assocmem.AssocMem) error {
	r.Total = r.Correct + r.NotCorrect + r.TransitionError
	if r.Total > 0 {
		r.OverallAccuracy = float64(r.Correct) / float64(r.Total)
	}

	var sumClassAcc float64
	supportedClasses := 0
	for c, row := range r.Confusion {
		rowTotal := 0
		for _, v := range row {
			rowTotal += v
		}
		if rowTotal == 0 {
			continue
		}
		sumClassAcc += float64(row[c]) / float64(rowTotal)
		supportedClasses++
	}
	if supportedClasses > 0 {
		r.ClassAverageAccuracy = sumClassAcc / float64(supportedClasses)
	}

	k := len(r.Confusion)
	var sumSim float64
	pairs := 0
	for i := 0; i < k; i++ {
		vi, err := mem.GetClassVector(i)
		if err != nil {
			return err
		}
		if vi == nil {
			continue
		}
		for j := i + 1; j < k; j++ {
			vj, err := mem.GetClassVector(j)
			if err != nil {
				return err
			}
			if vj == nil {
				continue
			}
			sim, err := hypervector.Similarity(vi, vj)
			if err != nil {
				return err
			}
			sumSim += sim
			pairs++
		}
	}
	if pairs > 0 {
		r.MeanInterClassSimilarity = sumSim / float64(pairs)
	}
	return nil
}

// plurality returns the most frequent label, ties broken toward the
// smallest label value.
func plurality(labels []int) int {
	counts := make(map[int]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best, bestCount := keys[0], -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// EvaluateDirectNGram steps through non-overlapping windows of the
// encoder's n-gram size, classifies each, and compares against the
// window's plurality label. A transition window (labels[j] != labels[j+n
// -1]) whose classification is wrong is counted as TransitionError rather
// than NotCorrect. Total = Correct+NotCorrect+TransitionError.
func EvaluateDirectNGram(mem *assocmem.AssocMem, enc *encoder.Encoder, data [][]float64, labels []int, opts ...Option) (*Result, error) {
	if len(data) != len(labels) {
		return nil, ErrLengthMismatch
	}
	n := enc.NGramSize()
	res := newResult(mem.K())

	for j := 0; j+n <= len(data); j += n {
		window := labels[j : j+n]
		yStar := plurality(window)
		if yStar < 0 || yStar >= mem.K() {
			return nil, ErrClassOutOfRange
		}
		hv, err := enc.EncodeTimeseries(data[j : j+n])
		if err != nil {
			return nil, err
		}
		pred, err := mem.Classify(hv)
		if err != nil {
			return nil, err
		}
		res.Confusion[yStar][pred]++
		switch {
		case pred == yStar:
			res.Correct++
		case window[0] != window[n-1]:
			res.TransitionError++
		default:
			res.NotCorrect++
		}
	}
	if err := res.finalize(mem); err != nil {
		return nil, err
	}
	resolveOptions(opts).logResult("direct_ngram", res)
	return res, nil
}

// EvaluateSlidingWindow evaluates every n-gram inside each non-overlapping
// WINDOW-sized block of data, keeps the classification with the highest
// similarity confidence within that block, and compares it to the block's
// plurality label. Total = Correct+NotCorrect over the blocks actually
// evaluated — never len(data), which would double count the overlapping
// n-grams a stride-1 inner scan folds together.
func EvaluateSlidingWindow(mem *assocmem.AssocMem, enc *encoder.Encoder, data [][]float64, labels []int, window int, opts ...Option) (*Result, error) {
	if len(data) != len(labels) {
		return nil, ErrLengthMismatch
	}
	n := enc.NGramSize()
	if window < n {
		return nil, ErrInvalidArgument
	}
	res := newResult(mem.K())

	for start := 0; start+window <= len(data); start += window {
		blockLabels := labels[start : start+window]
		yStar := plurality(blockLabels)
		if yStar < 0 || yStar >= mem.K() {
			return nil, ErrClassOutOfRange
		}

		bestClass := -1
		bestConfidence := 0.0
		for j := start; j+n <= start+window; j++ {
			hv, err := enc.EncodeTimeseries(data[j : j+n])
			if err != nil {
				return nil, err
			}
			cls, confidence, err := mem.ClassifyWithConfidence(hv)
			if err != nil {
				return nil, err
			}
			if bestClass == -1 || confidence > bestConfidence {
				bestClass, bestConfidence = cls, confidence
			}
		}
		if bestClass == -1 {
			continue
		}

		res.Confusion[yStar][bestClass]++
		if bestClass == yStar {
			res.Correct++
		} else {
			res.NotCorrect++
		}
	}
	if err := res.finalize(mem); err != nil {
		return nil, err
	}
	resolveOptions(opts).logResult("sliding_window", res)
	return res, nil
}

// EvaluateGeneral classifies every row independently, with no temporal
// context. Total = Correct+NotCorrect.
func EvaluateGeneral(mem *assocmem.AssocMem, enc *encoder.Encoder, data [][]float64, labels []int, opts ...Option) (*Result, error) {
	if len(data) != len(labels) {
		return nil, ErrLengthMismatch
	}
	res := newResult(mem.K())

	for i, sample := range data {
		y := labels[i]
		if y < 0 || y >= mem.K() {
			return nil, ErrClassOutOfRange
		}
		hv, err := enc.EncodeSample(sample)
		if err != nil {
			return nil, err
		}
		pred, err := mem.Classify(hv)
		if err != nil {
			return nil, err
		}
		res.Confusion[y][pred]++
		if pred == y {
			res.Correct++
		} else {
			res.NotCorrect++
		}
	}
	if err := res.finalize(mem); err != nil {
		return nil, err
	}
	resolveOptions(opts).logResult("general", res)
	return res, nil
}
