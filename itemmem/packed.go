// File: packed.go
// Role: the packed bitstring codec, an alternative to the CSV form for
// ModeBinary tables: one row per hypervector, D characters of '0'/'1'.
// Must be selected explicitly by the caller; it is not auto-detected
// alongside the CSV form.

package itemmem

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// WritePacked writes vecs as one bitstring row per hypervector. Every
// element of v.At(i) for i in [0,D) is rendered in order as '0' or '1'; the
// reference format's "MSB-first within 32-bit words" note describes the
// original implementation's internal word layout, not the logical bit
// order, which is preserved here regardless of how the caller's HV packs
// its bits.
func WritePacked(w io.Writer, vecs []*hypervector.HV) error {
	bw := bufio.NewWriter(w)
	for _, v := range vecs {
		if v.Mode() != hypervector.ModeBinary {
			return ErrModeUnsupported
		}
		row := make([]byte, v.Dim())
		for i := 0; i < v.Dim(); i++ {
			if v.At(i) == 1 {
				row[i] = '1'
			} else {
				row[i] = '0'
			}
		}
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPacked parses the form written by WritePacked, producing one
// ModeBinary HV of dimension dim per non-empty line.
func ReadPacked(r io.Reader, dim int) ([]*hypervector.HV, error) {
	if dim <= 0 {
		return nil, ErrInvalidArgument
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, dim+64), dim+64)

	var vecs []*hypervector.HV
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(line) != dim {
			return nil, fmt.Errorf("%w: row length %d != dimension %d", ErrIOFormat, len(line), dim)
		}
		v := hypervector.NewUninitialized(hypervector.ModeBinary, dim)
		for i := 0; i < dim; i++ {
			switch line[i] {
			case '0':
			case '1':
				v.Set(i, 1)
			default:
				return nil, fmt.Errorf("%w: non-bit character %q", ErrIOFormat, line[i])
			}
		}
		vecs = append(vecs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return vecs, nil
}
