package ga_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianhorn/HDC-Assymetric-CiM/ga"
	"github.com/marianhorn/HDC-Assymetric-CiM/hdcmetrics"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/model"
)

func syntheticDataset(t, f int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, t)
	labels := make([]int, t)
	for i := 0; i < t; i++ {
		row := make([]float64, f)
		cls := i / 4 % 2
		for j := range row {
			row[j] = float64(cls)*5 + rng.Float64()*2
		}
		data[i] = row
		labels[i] = cls
	}
	return data, labels
}

func baseProblem(t *testing.T) (ga.Config, ga.Problem) {
	t.Helper()
	const dim = 1000
	const features = 3
	const levels = 4

	rng := rand.New(rand.NewSource(1))
	im, err := itemmem.Random(features, dim, hypervector.ModeBinary, rng)
	require.NoError(t, err)

	data, labels := syntheticDataset(32, features, 1)

	cfg := ga.Config{
		PopulationSize: 8,
		Generations:    5,
		CrossoverRate:  0.7,
		MutationRate:   0.2,
		TournamentSize: 3,
		Seed:           1,
		MaxFlipsCiM:    dim,
		Mode:           ga.ModePareto,
		UniformInit:    true,
		Levels:         levels,
		Rows:           1,
		Dim:            dim,
		HVMode:         hypervector.ModeBinary,
	}
	problem := ga.Problem{
		ModelCfg: model.Config{
			Dim: dim, Features: features, NumLevels: levels, NGram: 3,
			MinLevel: 0, MaxLevel: 10, Mode: hypervector.ModeBinary,
			Classes: 2, CutAngleThreshold: 0.9,
		},
		IM:          im,
		TrainData:   data,
		TrainLabels: labels,
	}
	return cfg, problem
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg, problem := baseProblem(t)
	cfg.TournamentSize = cfg.PopulationSize + 1
	_, err := ga.Run(context.Background(), cfg, problem)
	assert.ErrorIs(t, err, ga.ErrConfigInvalid)
}

func TestRunRejectsEmptyTrainingData(t *testing.T) {
	cfg, problem := baseProblem(t)
	problem.TrainData = nil
	problem.TrainLabels = nil
	_, err := ga.Run(context.Background(), cfg, problem)
	assert.ErrorIs(t, err, ga.ErrNoTrainingData)
}

func TestRunProducesBestWithBoundedGenome(t *testing.T) {
	cfg, problem := baseProblem(t)
	res, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.Len(t, res.Best.B, cfg.Levels-1)
	sum := 0
	for _, v := range res.Best.B {
		assert.GreaterOrEqual(t, v, 0)
		sum += v
	}
	assert.LessOrEqual(t, sum, cfg.MaxFlipsCiM)
	assert.NotEmpty(t, res.ParetoFront)
}

func TestRunAccuracyModeTracksScalarFitness(t *testing.T) {
	cfg, problem := baseProblem(t)
	cfg.Mode = ga.ModeAccuracy
	res, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)
	assert.Equal(t, res.Best.Accuracy, res.Best.Fitness)
}

func TestRunMultiModeScalarIsAccuracyMinusSimilarity(t *testing.T) {
	cfg, problem := baseProblem(t)
	cfg.Mode = ga.ModeMulti
	res, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)
	assert.InDelta(t, res.Best.Accuracy-res.Best.Similarity, res.Best.Fitness, 1e-9)
}

func TestRunPrecomputedMultiLadderPath(t *testing.T) {
	cfg, problem := baseProblem(t)
	cfg.Rows = problem.ModelCfg.Features
	cfg.Mode = ga.ModeMulti
	cfg.PopulationSize = 6
	cfg.Generations = 2
	res, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)
	assert.Len(t, res.Best.B, cfg.Rows*(cfg.Levels-1))
}

// TestGADeterminismAcrossWorkerPoolSizes is the E6/property-8 scenario:
// given an identical seed, config, and training data, the winning genome
// and its objective values must be identical regardless of the fitness
// fan-out's worker pool size.
func TestGADeterminismAcrossWorkerPoolSizes(t *testing.T) {
	cfg, problem := baseProblem(t)
	cfg.Mode = ga.ModeAccuracy

	var winners [][]int
	var accuracies []float64
	for _, workers := range []int{1, 4, 8} {
		cfg.Workers = workers
		res, err := ga.Run(context.Background(), cfg, problem)
		require.NoError(t, err)
		winners = append(winners, append([]int(nil), res.Best.B...))
		accuracies = append(accuracies, res.Best.Accuracy)
	}

	for i := 1; i < len(winners); i++ {
		assert.Equal(t, winners[0], winners[i], "winning genome must be identical across worker pool sizes")
		assert.Equal(t, accuracies[0], accuracies[i])
	}
}

func TestRunWithLoggerEmitsOneEventPerGeneration(t *testing.T) {
	cfg, problem := baseProblem(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	cfg.Logger = &logger

	_, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)

	lines := bytes.Count(buf.Bytes(), []byte("generation complete"))
	assert.Equal(t, cfg.Generations+1, lines)
}

func TestRunWithMetricsRecordsGenerationsAndEvaluations(t *testing.T) {
	cfg, problem := baseProblem(t)
	reg := prometheus.NewRegistry()
	cfg.Metrics = hdcmetrics.NewRecorder(reg)

	_, err := ga.Run(context.Background(), cfg, problem)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	var generationsCounter float64
	var evalHistogramCount uint64
	for _, f := range families {
		switch f.GetName() {
		case "hdc_ga_generations_total":
			generationsCounter = f.Metric[0].GetCounter().GetValue()
		case "hdc_ga_fitness_evaluation_seconds":
			evalHistogramCount = f.Metric[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, float64(cfg.Generations+1), generationsCounter)
	assert.Equal(t, uint64(cfg.Generations+1), evalHistogramCount)
}

func TestMutationRandomWalkStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	child := &ga.Individual{B: []int{0, 5, 10}}
	for i := 0; i < 50; i++ {
		ga.MutationRandomWalk(child, 10, 0.8, rng)
		for _, v := range child.B {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 10)
		}
	}
}
