// File: predictions.go
// Role: the optional predicted-labels side channel (spec.md §6), kept
// independent of the scoring Evaluate* calls since it is a different,
// narrower concern (one predicted_label per row, not a summary statistic).

package evaluator

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/encoder"
)

// WritePredictions streams data through a rolling n-gram encoding and
// writes one "index,true_label,predicted_label" row per input sample to
// w, with predicted_label = -1 for the first n-1 rows (warm-up, no
// prediction yet available).
func WritePredictions(w io.Writer, mem *assocmem.AssocMem, enc *encoder.Encoder, data [][]float64, labels []int) error {
	if len(data) != len(labels) {
		return ErrLengthMismatch
	}
	cw := csv.NewWriter(w)
	roller := encoder.NewRolling(enc)

	for i, sample := range data {
		hv, ready, err := roller.Push(sample)
		if err != nil {
			return err
		}
		predicted := -1
		if ready {
			predicted, err = mem.Classify(hv)
			if err != nil {
				return err
			}
		}
		row := []string{strconv.Itoa(i), strconv.Itoa(labels[i]), strconv.Itoa(predicted)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
