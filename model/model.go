// File: model.go
// Role: the train+evaluate facade used both by direct callers and by the
// GA's per-individual fitness function (spec.md §4.I).

package model

import (
	"github.com/marianhorn/HDC-Assymetric-CiM/assocmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/cim"
	"github.com/marianhorn/HDC-Assymetric-CiM/encoder"
	"github.com/marianhorn/HDC-Assymetric-CiM/evaluator"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/trainer"
)

// Config collects the knobs needed to build an Encoder+AssocMem pair for
// one train+evaluate cycle, independent of how the CiM/pIM backing the
// Encoder was constructed.
type Config struct {
	Dim, Features, NumLevels, NGram int
	MinLevel, MaxLevel              float64
	Mode                            hypervector.Mode
	Classes                         int
	CutAngleThreshold               float64
	Normalize                       bool
}

// Model wires together a fresh Encoder and AssocMem for exactly one
// train+evaluate cycle. It is deliberately cheap to construct: each GA
// individual owns its own transient CiM/pIM, Encoder, and AssocMem, with
// no shared mutable state across individuals (spec.md §5).
type Model struct {
	cfg Config
	enc *encoder.Encoder
	mem *assocmem.AssocMem
}

// New builds a Model backed by an IM+CiM pair (the single-ladder case).
func New(cfg Config, im *itemmem.IM, ladder *cim.CiM) (*Model, error) {
	enc, err := encoder.New(cfg.Dim, cfg.Features, cfg.NumLevels, cfg.NGram, cfg.MinLevel, cfg.MaxLevel, cfg.Mode, encoder.WithIM(im, ladder))
	if err != nil {
		return nil, err
	}
	return newModel(cfg, enc)
}

// NewPrecomputed builds a Model backed by a fused pIM (the per-feature
// ladder case).
func NewPrecomputed(cfg Config, pim *cim.Precomputed) (*Model, error) {
	enc, err := encoder.New(cfg.Dim, cfg.Features, cfg.NumLevels, cfg.NGram, cfg.MinLevel, cfg.MaxLevel, cfg.Mode, encoder.WithPrecomputed(pim))
	if err != nil {
		return nil, err
	}
	return newModel(cfg, enc)
}

func newModel(cfg Config, enc *encoder.Encoder) (*Model, error) {
	mem, err := assocmem.New(cfg.Classes, cfg.Dim, cfg.Mode, cfg.CutAngleThreshold)
	if err != nil {
		return nil, err
	}
	return &Model{cfg: cfg, enc: enc, mem: mem}, nil
}

// Train fits the AssocMem on data/labels using the sliding n-gram path
// (component G) — the same training semantics the direct-n-gram evaluator
// scores against.
func (m *Model) Train(data [][]float64, labels []int) error {
	return trainer.Train(m.enc, m.mem, data, labels, m.cfg.Normalize)
}

// Evaluate scores the trained model on held-out data and returns the two
// objectives a GA fitness function needs: accuracy and mean inter-class
// similarity.
func (m *Model) Evaluate(data [][]float64, labels []int) (accuracy, similarity float64, err error) {
	res, err := evaluator.EvaluateDirectNGram(m.mem, m.enc, data, labels)
	if err != nil {
		return 0, 0, err
	}
	return res.OverallAccuracy, res.MeanInterClassSimilarity, nil
}

// TrainAndEvaluate runs the full fitness sub-routine spec.md §4.I
// describes: train on trainData/trainLabels, then evaluate on
// evalData/evalLabels. If the caller supplies no held-out split (nil
// evalData), training data is reused for evaluation, matching the
// documented fallback ("validation or test, whichever the caller
// supplies; training fallback if neither given").
func (m *Model) TrainAndEvaluate(trainData [][]float64, trainLabels []int, evalData [][]float64, evalLabels []int) (accuracy, similarity float64, err error) {
	if err := m.Train(trainData, trainLabels); err != nil {
		return 0, 0, err
	}
	if evalData == nil {
		evalData, evalLabels = trainData, trainLabels
	}
	return m.Evaluate(evalData, evalLabels)
}
