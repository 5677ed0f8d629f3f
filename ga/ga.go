// File: ga.go
// Role: the GA driver loop — population init, the per-generation
// evaluate/select/vary/replace cycle, and the final winner.

package ga

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/marianhorn/HDC-Assymetric-CiM/hdcmetrics"
	"github.com/marianhorn/HDC-Assymetric-CiM/hypervector"
)

// SelectionMode picks how parent selection and generational replacement
// weigh the (accuracy, similarity) objective pair.
type SelectionMode int

const (
	// ModePareto ranks by NSGA-II non-dominated fronts and crowding
	// distance; replacement is (μ+λ) elitist.
	ModePareto SelectionMode = iota
	// ModeMulti scalarizes fitness as accuracy - similarity; replacement
	// is generational, keeping the top PopulationSize of parents ∪
	// offspring by fitness.
	ModeMulti
	// ModeAccuracy scalarizes fitness as accuracy alone; replacement is
	// the same generational top-N rule ModeMulti uses.
	ModeAccuracy
)

// Config collects every GA knob spec.md §6 enumerates.
type Config struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	TournamentSize int
	Seed           uint64
	MaxFlipsCiM    int // K, the flip budget per ladder row
	Mode           SelectionMode
	UniformInit    bool // true: uniform random-weights init; false: equal split
	Levels         int  // L
	Rows           int  // 1 for a single shared ladder, Features for pIM
	Dim            int
	HVMode         hypervector.Mode
	Workers        int // fitness fan-out pool size; <=0 means GOMAXPROCS

	// Logger, if set, receives one debug-level event per generation
	// reporting the best fitness/accuracy/similarity seen so far. Purely
	// observational: never consulted by selection, variation, or
	// replacement, so it has no effect on the RNG sub-streams and cannot
	// affect determinism.
	Logger *zerolog.Logger

	// Metrics, if set, receives one ObserveGeneration call per generation
	// and one ObserveFitnessEvaluation call per fitness fan-out. A nil
	// *Recorder is a valid no-op, same as Logger being nil.
	Metrics *hdcmetrics.Recorder
}

func validateConfig(cfg Config) error {
	switch {
	case cfg.PopulationSize < 2,
		cfg.Generations < 0,
		cfg.CrossoverRate < 0 || cfg.CrossoverRate > 1,
		cfg.MutationRate < 0 || cfg.MutationRate > 1,
		cfg.TournamentSize < 1 || cfg.TournamentSize > cfg.PopulationSize,
		cfg.MaxFlipsCiM < 0,
		cfg.Levels < 2,
		cfg.Rows < 1,
		cfg.Dim <= 0:
		return ErrConfigInvalid
	}
	return nil
}

// Result is the outcome of one GA run: the overall winner, the final
// population, and the rank-0 members of it. In PARETO mode that is the
// non-dominated front; in the other modes Rank is never assigned, so
// ParetoFront holds the whole final population.
type Result struct {
	Best        *Individual
	Population  []*Individual
	ParetoFront []*Individual
}

// Run executes the full GA: initializes a population from the seed's
// init/permutation sub-streams, then for Generations rounds evaluates
// fitness (in parallel), selects parents by tournament, produces offspring
// by crossover and mutation, and replaces the population according to
// cfg.Mode. Selection and variation consume their RNG sub-streams
// serially in a fixed order independent of how fitness evaluation was
// scheduled, so the winning genome does not depend on cfg.Workers.
func Run(ctx context.Context, cfg Config, problem Problem) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(problem.TrainData) == 0 || len(problem.TrainData) != len(problem.TrainLabels) {
		return nil, ErrNoTrainingData
	}

	initRNG := subStream(cfg.Seed, saltInit)
	permRNG := subStream(cfg.Seed, saltPermutation)
	crossRNG := subStream(cfg.Seed, saltCrossover)
	mutRNG := subStream(cfg.Seed, saltMutation)
	tourRNG := subStream(cfg.Seed, saltTournament)

	permutations := make([][]int, cfg.Rows)
	for r := 0; r < cfg.Rows; r++ {
		permutations[r] = permRNG.Perm(cfg.Dim)
	}

	rowLen := cfg.Levels - 1
	pop := make([]*Individual, cfg.PopulationSize)
	for i := range pop {
		pop[i] = &Individual{B: newGenome(cfg.Rows, rowLen, cfg.MaxFlipsCiM, cfg.UniformInit, initRNG)}
	}

	if err := timedEvaluatePopulation(ctx, pop, permutations, cfg, problem); err != nil {
		return nil, err
	}
	if cfg.Mode == ModePareto {
		rankPopulation(pop)
	}
	reportGeneration(cfg, 0, selectBest(pop, cfg.Mode))

	for gen := 0; gen < cfg.Generations; gen++ {
		offspring := make([]*Individual, cfg.PopulationSize)
		for i := range offspring {
			parentA := tournamentSelect(pop, cfg.TournamentSize, cfg.Mode, tourRNG)
			parentB := tournamentSelect(pop, cfg.TournamentSize, cfg.Mode, tourRNG)
			child := crossover(parentA, parentB, cfg.CrossoverRate, crossRNG)
			mutateTransfer(child, cfg.Rows, cfg.Levels, cfg.MutationRate, mutRNG)
			for r := 0; r < cfg.Rows; r++ {
				clampRow(child.B[r*rowLen:(r+1)*rowLen], cfg.MaxFlipsCiM)
			}
			offspring[i] = child
		}
		if err := timedEvaluatePopulation(ctx, offspring, permutations, cfg, problem); err != nil {
			return nil, err
		}
		pop = replace(pop, offspring, cfg)
		reportGeneration(cfg, gen+1, selectBest(pop, cfg.Mode))
	}

	best := selectBest(pop, cfg.Mode)
	return &Result{Best: best, Population: pop, ParetoFront: paretoFront(pop)}, nil
}

// timedEvaluatePopulation wraps evaluatePopulation with an
// ObserveFitnessEvaluation call, timed around the whole fan-out+join
// barrier. Purely observational: the timing is never fed back into
// selection, variation, or replacement.
func timedEvaluatePopulation(ctx context.Context, pop []*Individual, permutations [][]int, cfg Config, problem Problem) error {
	start := time.Now()
	err := evaluatePopulation(ctx, pop, permutations, cfg, problem)
	cfg.Metrics.ObserveFitnessEvaluation(time.Since(start))
	return err
}

func reportGeneration(cfg Config, gen int, best *Individual) {
	if best == nil {
		return
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug().
			Int("generation", gen).
			Float64("best_fitness", best.Fitness).
			Float64("best_accuracy", best.Accuracy).
			Float64("best_similarity", best.Similarity).
			Msg("generation complete")
	}
	cfg.Metrics.ObserveGeneration(best.Fitness, best.Accuracy, best.Similarity)
}

func rankPopulation(pop []*Individual) {
	fronts := nonDominatedSort(pop)
	for _, front := range fronts {
		assignCrowdingDistance(front)
	}
}

// replace merges parents and offspring and keeps PopulationSize survivors:
// (μ+λ) elitist front-by-front selection for PARETO, or a generational
// top-N-by-fitness cut otherwise.
func replace(parents, offspring []*Individual, cfg Config) []*Individual {
	merged := make([]*Individual, 0, len(parents)+len(offspring))
	merged = append(merged, parents...)
	merged = append(merged, offspring...)

	if cfg.Mode == ModePareto {
		fronts := nonDominatedSort(merged)
		next := make([]*Individual, 0, cfg.PopulationSize)
		for _, front := range fronts {
			assignCrowdingDistance(front)
			if len(next)+len(front) <= cfg.PopulationSize {
				next = append(next, front...)
				continue
			}
			sort.Slice(front, func(i, j int) bool { return betterParetoOrder(front[i], front[j]) })
			next = append(next, front[:cfg.PopulationSize-len(next)]...)
			break
		}
		return next
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Fitness > merged[j].Fitness })
	return merged[:cfg.PopulationSize]
}

func selectBest(pop []*Individual, mode SelectionMode) *Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if mode == ModePareto {
			if betterParetoOrder(ind, best) {
				best = ind
			}
		} else if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

func paretoFront(pop []*Individual) []*Individual {
	var front []*Individual
	for _, ind := range pop {
		if ind.Rank == 0 {
			front = append(front, ind)
		}
	}
	return front
}
