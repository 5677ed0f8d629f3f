// File: fitness.go
// Role: the fitness sub-routine (spec.md §4.I): build a candidate CiM/pIM
// from a genome and the run's fixed permutations, wrap it in a model.Model,
// train on the training split, and evaluate on the held-out split. One
// generation's individuals fan out across a worker pool and join before
// selection/variation run, matching spec.md §5's data-parallel-fan-out-
// with-join-barrier model; each task only ever writes its own
// *Individual's fields, so there is no shared mutable state to protect.

package ga

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/marianhorn/HDC-Assymetric-CiM/cim"
	"github.com/marianhorn/HDC-Assymetric-CiM/itemmem"
	"github.com/marianhorn/HDC-Assymetric-CiM/model"
)

// Problem bundles what a fitness evaluation needs beyond the candidate
// genome itself: the shared item memory and the train/held-out split. A
// nil EvalData reuses TrainData for evaluation, matching model.Model's own
// documented fallback.
type Problem struct {
	ModelCfg    model.Config
	IM          *itemmem.IM
	TrainData   [][]float64
	TrainLabels []int
	EvalData    [][]float64
	EvalLabels  []int
}

// buildModel materializes the model.Model a genome encodes: a single
// shared ladder when cfg.Rows == 1, or an independent per-feature pIM
// otherwise.
func buildModel(ind *Individual, permutations [][]int, cfg Config, problem Problem) (*model.Model, error) {
	rows := ind.rows(cfg.Rows, cfg.Levels)
	if cfg.Rows == 1 {
		ladder, err := cim.NewFromB(rows[0], permutations[0], cfg.HVMode, cfg.Dim)
		if err != nil {
			return nil, err
		}
		return model.New(problem.ModelCfg, problem.IM, ladder)
	}
	pim, err := cim.NewPrecomputedFromB(problem.IM, rows, permutations)
	if err != nil {
		return nil, err
	}
	return model.NewPrecomputed(problem.ModelCfg, pim)
}

// evaluateIndividual fills ind.Accuracy, ind.Similarity, and ind.Fitness
// (the scalar used by MULTI/ACCURACY modes; PARETO mode ignores Fitness
// and uses Rank/Crowding instead, assigned separately).
func evaluateIndividual(ind *Individual, permutations [][]int, cfg Config, problem Problem) error {
	m, err := buildModel(ind, permutations, cfg, problem)
	if err != nil {
		return err
	}
	acc, sim, err := m.TrainAndEvaluate(problem.TrainData, problem.TrainLabels, problem.EvalData, problem.EvalLabels)
	if err != nil {
		return err
	}
	ind.Accuracy = acc
	ind.Similarity = sim
	if cfg.Mode == ModeAccuracy {
		ind.Fitness = acc
	} else {
		ind.Fitness = acc - sim
	}
	return nil
}

// evaluatePopulation runs evaluateIndividual for every individual in pop
// across a worker pool bounded by cfg.Workers (GOMAXPROCS if unset). The
// GA does not swallow a sub-evaluation error: the first one aborts the
// whole generation.
func evaluatePopulation(ctx context.Context, pop []*Individual, permutations [][]int, cfg Config, problem Problem) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, ind := range pop {
		ind := ind
		g.Go(func() error {
			if err := evaluateIndividual(ind, permutations, cfg, problem); err != nil {
				return fmt.Errorf("%w: %v", ErrFitnessFailed, err)
			}
			return nil
		})
	}
	return g.Wait()
}
