// File: encoder.go
// Role: construction, the quantizer, and the two non-streaming encode
// entry points (encode_timestamp / EncodeSample and encode_timeseries).

package encoder

import (
	"math"

	"github.com/marianhorn/HDC-Assymetric-CiM/cim"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
)

// Encoder turns quantized samples into hypervectors, either via IM+CiM
// (CiM shared across every feature) or via a precomputed per-feature
// fusion table (pIM). Exactly one of those two item-memory strategies is
// configured per Encoder; whichever is present, it alone is consulted.
type Encoder struct {
	dim       int
	features  int
	numLevels int
	nGram     int
	minLevel  float64
	maxLevel  float64
	mode      hypervector.Mode

	im  *itemmem.IM
	cim *cim.CiM
	pim *cim.Precomputed
}

// Option configures an Encoder at construction time.
type Option func(*Encoder) error

// WithIM supplies the (IM, CiM) pair used for direct timestamp encoding.
// CiM is shared across every feature; pass WithPrecomputed instead for a
// per-feature ladder fusion.
func WithIM(im *itemmem.IM, c *cim.CiM) Option {
	return func(e *Encoder) error {
		if im == nil || c == nil {
			return ErrInvalidArgument
		}
		e.im, e.cim = im, c
		return nil
	}
}

// WithPrecomputed supplies a precomputed per-feature IM x CiM fusion
// table, skipping per-feature binding at encode time.
func WithPrecomputed(p *cim.Precomputed) Option {
	return func(e *Encoder) error {
		if p == nil {
			return ErrInvalidArgument
		}
		e.pim = p
		return nil
	}
}

// New constructs an Encoder over F features, quantizing each into
// numLevels buckets within [minLevel, maxLevel], encoding n-gram windows
// of size nGram. Exactly one item-memory strategy (WithIM or
// WithPrecomputed) must be supplied: none yields ErrNoItemMemory, both
// yield ErrInvalidArgument.
func New(dim, features, numLevels, nGram int, minLevel, maxLevel float64, mode hypervector.Mode, opts ...Option) (*Encoder, error) {
	if dim <= 0 || features <= 0 || numLevels <= 1 || nGram <= 0 || !(minLevel < maxLevel) {
		return nil, ErrInvalidArgument
	}
	e := &Encoder{
		dim:       dim,
		features:  features,
		numLevels: numLevels,
		nGram:     nGram,
		minLevel:  minLevel,
		maxLevel:  maxLevel,
		mode:      mode,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.pim != nil && (e.im != nil || e.cim != nil) {
		return nil, ErrInvalidArgument
	}
	if e.pim == nil && (e.im == nil || e.cim == nil) {
		return nil, ErrNoItemMemory
	}
	return e, nil
}

// Dim reports the hypervector dimension D.
func (e *Encoder) Dim() int { return e.dim }

// Features reports the feature count F.
func (e *Encoder) Features() int { return e.features }

// NGramSize reports the configured temporal window size n.
func (e *Encoder) NGramSize() int { return e.nGram }

// Quantize maps a raw reading into a level in [0, numLevels): values at or
// below minLevel map to 0, values at or above maxLevel map to numLevels-1,
// otherwise floor((x-min)/(max-min)*(numLevels-1)). Both boundaries are
// inclusive of their saturated endpoint.
func (e *Encoder) Quantize(x float64) int {
	if x <= e.minLevel {
		return 0
	}
	if x >= e.maxLevel {
		return e.numLevels - 1
	}
	frac := (x - e.minLevel) / (e.maxLevel - e.minLevel) * float64(e.numLevels-1)
	return int(math.Floor(frac))
}

// encodeSpatial builds the bundled spatial hypervector for one row of F
// feature readings: per feature, quantize then fetch (or bind) the
// matching item-memory hypervector, then bundle all F results.
func (e *Encoder) encodeSpatial(sample []float64) (*hypervector.HV, error) {
	if len(sample) != e.features {
		return nil, ErrFeatureCountMismatch
	}
	parts := make([]*hypervector.HV, e.features)
	for f := 0; f < e.features; f++ {
		level := e.Quantize(sample[f])
		if e.pim != nil {
			parts[f] = e.pim.At(level, f)
			continue
		}
		bound, err := hypervector.Bind(e.im.At(f), e.cim.At(level))
		if err != nil {
			return nil, err
		}
		parts[f] = bound
	}
	return hypervector.BundleMulti(parts)
}

// EncodeTimestamp is encode_timestamp: the spatial encoding of a single
// row of F feature readings.
func (e *Encoder) EncodeTimestamp(sample []float64) (*hypervector.HV, error) {
	return e.encodeSpatial(sample)
}

// EncodeSample is the non-temporal entry point (encode_general_data in
// the reference implementation): algebraically identical to
// EncodeTimestamp, kept as a distinct method so callers doing
// classify-per-row training/evaluation name their intent explicitly
// rather than reusing the temporal-sounding EncodeTimestamp.
func (e *Encoder) EncodeSample(sample []float64) (*hypervector.HV, error) {
	return e.encodeSpatial(sample)
}

// EncodeTimeseries is encode_timeseries: an n-gram encoding of a window of
// exactly NGramSize() rows. r starts as the spatial encoding of window[0];
// each subsequent row i contributes bind(permute(r,1), encode_timestamp(
// window[i])), equivalently giving row i's spatial HV a permute(.,n-1-i)
// rotation before XOR-binding everything together.
func (e *Encoder) EncodeTimeseries(window [][]float64) (*hypervector.HV, error) {
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}
	if len(window) != e.nGram {
		return nil, ErrWindowSizeMismatch
	}
	r, err := e.encodeSpatial(window[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(window); i++ {
		spatial, err := e.encodeSpatial(window[i])
		if err != nil {
			return nil, err
		}
		shifted := hypervector.Permute(r, 1)
		r, err = hypervector.Bind(shifted, spatial)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// IsWindowStable reports whether labels[0] == labels[n-1]; the encoder
// itself never consults labels beyond this predicate, which callers in
// package trainer use to decide whether to record an encoded window.
func IsWindowStable(labels []int) (bool, error) {
	if len(labels) == 0 {
		return false, ErrEmptyWindow
	}
	return labels[0] == labels[len(labels)-1], nil
}
