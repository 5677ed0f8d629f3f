// File: csv.go
// Role: the commented-CSV codec shared by Item Memory and the continuous
// item memory ladder: an optional "# key=value,..." header line followed
// by one comma-separated row of D elements per hypervector.

package itemmem

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// Metadata carries the optional header fields. A zero value for any field
// means "not present in the header"; ReadCSV always sets NumVectors to the
// body's row count and, for a non-empty body, Dimension to its row width,
// regardless of what the header claims.
type Metadata struct {
	NumVectors  int
	NumLevels   int
	NumFeatures int
	Dimension   int
}

// headerPairs renders non-zero fields as comment-line key=value pairs, in a
// fixed, stable order.
func (m Metadata) headerPairs() []string {
	var pairs []string
	if m.NumVectors != 0 {
		pairs = append(pairs, fmt.Sprintf("num_vectors=%d", m.NumVectors))
	}
	if m.NumLevels != 0 {
		pairs = append(pairs, fmt.Sprintf("num_levels=%d", m.NumLevels))
	}
	if m.NumFeatures != 0 {
		pairs = append(pairs, fmt.Sprintf("num_features=%d", m.NumFeatures))
	}
	if m.Dimension != 0 {
		pairs = append(pairs, fmt.Sprintf("dimension=%d", m.Dimension))
	}
	return pairs
}

// WriteCSV writes vecs (row order = level-major for pIM tables, i.e.
// row_index = level*F + feature, left to the caller to order before
// calling) as one comma-separated row per hypervector, preceded by a
// "# key=value,..." comment header derived from meta.
func WriteCSV(w io.Writer, vecs []*hypervector.HV, meta Metadata) error {
	bw := bufio.NewWriter(w)
	if pairs := meta.headerPairs(); len(pairs) > 0 {
		if _, err := fmt.Fprintf(bw, "# %s\n", strings.Join(pairs, ",")); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(bw)
	for _, v := range vecs {
		row := make([]string, v.Dim())
		for i := 0; i < v.Dim(); i++ {
			row[i] = strconv.Itoa(v.At(i))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadCSV parses the form written by WriteCSV. Mode is inferred per row
// from the elements present: a row containing only 0/1 is ModeBinary, a
// row containing -1/1 is ModeBipolar. All rows must agree on width and
// mode, or ErrIOFormat is returned.
//
// A bipolar row whose every element happens to be +1 is indistinguishable
// from an all-ones binary row by value alone and will be read back as
// ModeBinary; this mirrors the CSV format's own ambiguity (elements are
// documented as "-1/1 (bipolar) or 0/1 (binary)" with no mode tag), so
// round-tripping such a vector requires the caller to already know its
// mode out of band.
func ReadCSV(r io.Reader) ([]*hypervector.HV, Metadata, error) {
	br := bufio.NewReader(r)
	meta := Metadata{}

	peeked, err := br.Peek(1)
	if err == nil && len(peeked) > 0 && peeked[0] == '#' {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, meta, rerr
		}
		meta = parseHeader(line)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, meta, fmt.Errorf("%w: %v", ErrIOFormat, err)
	}

	var vecs []*hypervector.HV
	width := -1
	var mode hypervector.Mode
	modeSet := false

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if width == -1 {
			width = len(rec)
		} else if len(rec) != width {
			return nil, meta, ErrIOFormat
		}

		elems := make([]int, width)
		rowBinary := true
		for i, field := range rec {
			n, perr := strconv.Atoi(strings.TrimSpace(field))
			if perr != nil {
				return nil, meta, fmt.Errorf("%w: %v", ErrIOFormat, perr)
			}
			if n != 0 && n != 1 {
				rowBinary = false
			}
			elems[i] = n
		}
		rowMode := hypervector.ModeBipolar
		if rowBinary {
			rowMode = hypervector.ModeBinary
		}
		if !modeSet {
			mode, modeSet = rowMode, true
		} else if mode != rowMode {
			return nil, meta, ErrIOFormat
		}

		v := hypervector.NewUninitialized(mode, width)
		for i, n := range elems {
			v.Set(i, n)
		}
		vecs = append(vecs, v)
	}

	if width > 0 {
		meta.Dimension = width
	}
	meta.NumVectors = len(vecs)
	return vecs, meta, nil
}

func parseHeader(line string) Metadata {
	var meta Metadata
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	for _, pair := range strings.Split(line, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			continue
		}
		val, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(kv[0]) {
		case "num_vectors":
			meta.NumVectors = val
		case "num_levels":
			meta.NumLevels = val
		case "num_features":
			meta.NumFeatures = val
		case "dimension":
			meta.Dimension = val
		}
	}
	return meta
}
