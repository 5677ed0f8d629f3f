// File: selection.go
// Role: NSGA-II non-dominated sorting and crowding distance (for PARETO
// mode) plus tournament parent selection shared by all three modes.

package ga

import (
	"math"
	"math/rand"
	"sort"
)

// dominates reports whether a dominates b under (maximize Accuracy,
// minimize Similarity): at least as good on both objectives, strictly
// better on at least one.
func dominates(a, b *Individual) bool {
	notWorse := a.Accuracy >= b.Accuracy && a.Similarity <= b.Similarity
	strictlyBetter := a.Accuracy > b.Accuracy || a.Similarity < b.Similarity
	return notWorse && strictlyBetter
}

// nonDominatedSort partitions pop into fronts (front 0 is non-dominated)
// and writes each individual's front index into its Rank field.
func nonDominatedSort(pop []*Individual) [][]*Individual {
	n := len(pop)
	dominatedBy := make([][]int, n)
	dominationCount := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dominates(pop[i], pop[j]) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if dominates(pop[j], pop[i]) {
				dominationCount[i]++
			}
		}
	}

	var fronts [][]*Individual
	current := make([]int, 0)
	for i := 0; i < n; i++ {
		if dominationCount[i] == 0 {
			pop[i].Rank = 0
			current = append(current, i)
		}
	}
	rank := 0
	for len(current) > 0 {
		front := make([]*Individual, 0, len(current))
		var next []int
		for _, i := range current {
			front = append(front, pop[i])
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					pop[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		fronts = append(fronts, front)
		current = next
		rank++
	}
	return fronts
}

// assignCrowdingDistance computes NSGA-II crowding distance within one
// front and writes it into each individual's Crowding field. Boundary
// individuals (extremes of either objective) get +Inf so they always
// survive replacement ahead of interior points.
func assignCrowdingDistance(front []*Individual) {
	n := len(front)
	if n == 0 {
		return
	}
	for _, ind := range front {
		ind.Crowding = 0
	}
	if n <= 2 {
		for _, ind := range front {
			ind.Crowding = math.Inf(1)
		}
		return
	}

	accOrder := append([]*Individual(nil), front...)
	sort.Slice(accOrder, func(i, j int) bool { return accOrder[i].Accuracy < accOrder[j].Accuracy })
	crowdByObjective(accOrder, func(ind *Individual) float64 { return ind.Accuracy })

	simOrder := append([]*Individual(nil), front...)
	sort.Slice(simOrder, func(i, j int) bool { return simOrder[i].Similarity < simOrder[j].Similarity })
	crowdByObjective(simOrder, func(ind *Individual) float64 { return ind.Similarity })
}

func crowdByObjective(ordered []*Individual, value func(*Individual) float64) {
	n := len(ordered)
	lo, hi := value(ordered[0]), value(ordered[n-1])
	ordered[0].Crowding = math.Inf(1)
	ordered[n-1].Crowding = math.Inf(1)
	span := hi - lo
	if span == 0 {
		return
	}
	for i := 1; i < n-1; i++ {
		if math.IsInf(ordered[i].Crowding, 1) {
			continue
		}
		ordered[i].Crowding += (value(ordered[i+1]) - value(ordered[i-1])) / span
	}
}

// betterParetoOrder reports whether a ranks ahead of b for tournament and
// replacement purposes: lower front first, then higher crowding distance
// as the tie-break (preferring individuals in sparser regions of their
// front).
func betterParetoOrder(a, b *Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Crowding > b.Crowding
}

// tournamentSelect runs a tournament of size k over pop and returns the
// winner, ranked by (Rank, Crowding) in PARETO mode or by scalar Fitness
// otherwise.
func tournamentSelect(pop []*Individual, k int, mode SelectionMode, rng *rand.Rand) *Individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		candidate := pop[rng.Intn(len(pop))]
		if betterCandidate(candidate, best, mode) {
			best = candidate
		}
	}
	return best
}

func betterCandidate(candidate, best *Individual, mode SelectionMode) bool {
	if mode == ModePareto {
		return betterParetoOrder(candidate, best)
	}
	return candidate.Fitness > best.Fitness
}
