package selection

import (
	"math"
	"sort"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// minimizingWeights turns a population's objectives into normalized
// selection weights where a smaller objective yields a larger weight
// (minimization). It requires every individual evaluated with a finite
// Single objective.
func minimizingWeights[E individual.Encoding[E]](owner string, pop population.Population[E]) ([]float64, error) {
	raw := make([]float64, len(pop))
	maxV := math.Inf(-1)
	for i := range pop {
		obj, ok := pop[i].Objective()
		if !ok {
			return nil, layoutf(owner, "individual %d is unevaluated", i)
		}
		single, ok := obj.(objective.Single)
		if !ok {
			return nil, layoutf(owner, "individual %d has a non-Single objective", i)
		}
		v := single.Value()
		if math.IsInf(v, 1) {
			return nil, layoutf(owner, "individual %d has a non-finite objective", i)
		}
		raw[i] = v
		if v > maxV {
			maxV = v
		}
	}
	// Invert around the max so smaller-is-better becomes larger-is-better,
	// then shift to keep every weight non-negative.
	sum := 0.0
	weights := make([]float64, len(raw))
	for i, v := range raw {
		weights[i] = maxV - v + 1
		sum += weights[i]
	}
	if sum <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(len(weights))
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights, nil
}

func spinWheel(weights []float64, point float64) int {
	acc := 0.0
	for i, w := range weights {
		acc += w
		if point <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// RouletteWheel selects N individuals by fitness-proportionate sampling
// with an offset applied to every spin point before wrapping into [0,1).
type RouletteWheel[E individual.Encoding[E]] struct {
	component.Base[E]
	N      int
	Offset float64
}

// NewRouletteWheel returns a RouletteWheel selector. n must be positive.
func NewRouletteWheel[E individual.Encoding[E]](n int, offset float64) (*RouletteWheel[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &RouletteWheel[E]{N: n, Offset: offset}, nil
}

func (*RouletteWheel[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.RouletteWheel")
}

func (rw *RouletteWheel[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	weights, err := minimizingWeights[E]("selection.RouletteWheel", pop)
	if err != nil {
		return err
	}
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		out := make(population.Population[E], rw.N)
		for i := range out {
			point := math.Mod(r.Float64()+rw.Offset, 1.0)
			out[i] = pop[spinWheel(weights, point)].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

// StochasticUniversalSampling selects N individuals with a single spin
// and N evenly spaced pointers, reducing selection variance versus N
// independent RouletteWheel spins.
type StochasticUniversalSampling[E individual.Encoding[E]] struct {
	component.Base[E]
	N      int
	Offset float64
}

// NewStochasticUniversalSampling returns the selector. n must be
// positive.
func NewStochasticUniversalSampling[E individual.Encoding[E]](n int, offset float64) (*StochasticUniversalSampling[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &StochasticUniversalSampling[E]{N: n, Offset: offset}, nil
}

func (*StochasticUniversalSampling[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.StochasticUniversalSampling")
}

func (sus *StochasticUniversalSampling[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	weights, err := minimizingWeights[E]("selection.StochasticUniversalSampling", pop)
	if err != nil {
		return err
	}
	step := 1.0 / float64(sus.N)
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		start := math.Mod(r.Float64()*step+sus.Offset, 1.0)
		out := make(population.Population[E], sus.N)
		for i := range out {
			point := math.Mod(start+float64(i)*step, 1.0)
			out[i] = pop[spinWheel(weights, point)].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

// Tournament selects N individuals, each the best of Size distinct
// individuals sampled without replacement. Unlike other selectors,
// Tournament errors on an empty population (spec.md §4.4).
type Tournament[E individual.Encoding[E]] struct {
	component.Base[E]
	N        int
	Size     int
	Minimize bool
}

// NewTournament returns a Tournament selector. n and size must be
// positive.
func NewTournament[E individual.Encoding[E]](n, size int, minimize bool) (*Tournament[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	if size <= 0 {
		return nil, parameterf("size must be positive, got %d", size)
	}
	return &Tournament[E]{N: n, Size: size, Minimize: minimize}, nil
}

func (*Tournament[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.Tournament")
}

func (t *Tournament[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return layoutf("selection.Tournament", "population is empty")
	}
	size := t.Size
	if size > len(pop) {
		size = len(pop)
	}
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		out := make(population.Population[E], t.N)
		for i := range out {
			contestants := r.Perm(len(pop))[:size]
			best := contestants[0]
			for _, c := range contestants[1:] {
				if t.better(pop, c, best) {
					best = c
				}
			}
			out[i] = pop[best].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

func (t *Tournament[E]) better(pop population.Population[E], a, b int) bool {
	oa, aok := pop[a].Objective()
	ob, bok := pop[b].Objective()
	if !aok {
		return false
	}
	if !bok {
		return true
	}
	ord, ok := oa.Compare(ob)
	if !ok {
		return false
	}
	if t.Minimize {
		return ord == objective.Less
	}
	return ord == objective.Greater
}

// rankWeights returns selection weights proportional to each
// individual's rank when pop is sorted by the given comparator
// (rank 0 = worst). weightOf maps a 0-based ascending rank to a weight.
func rankWeights[E individual.Encoding[E]](pop population.Population[E], minimize bool, weightOf func(rank, n int) float64) ([]float64, []int) {
	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		oi, iok := pop[order[i]].Objective()
		oj, jok := pop[order[j]].Objective()
		if !iok || !jok {
			return false
		}
		ord, ok := oi.Compare(oj)
		if !ok {
			return false
		}
		if minimize {
			return ord == objective.Greater // worst (largest) first
		}
		return ord == objective.Less
	})
	weights := make([]float64, len(pop))
	for rank, idx := range order {
		weights[idx] = weightOf(rank, len(pop))
	}
	return weights, order
}

// LinearRank assigns selection probability linear in rank (worst = lowest
// weight, best = highest), independent of the magnitude of objective
// differences.
type LinearRank[E individual.Encoding[E]] struct {
	component.Base[E]
	N        int
	Minimize bool
}

// NewLinearRank returns a LinearRank selector. n must be positive.
func NewLinearRank[E individual.Encoding[E]](n int, minimize bool) (*LinearRank[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &LinearRank[E]{N: n, Minimize: minimize}, nil
}

func (*LinearRank[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.LinearRank")
}

func (lr *LinearRank[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	weights, _ := rankWeights[E](pop, lr.Minimize, func(rank, n int) float64 {
		return float64(rank+1) / float64(n*(n+1)/2)
	})
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		out := make(population.Population[E], lr.N)
		for i := range out {
			out[i] = pop[spinWheel(weights, r.Float64())].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

// ExponentialRank assigns selection probability exponentially decaying
// with rank, controlled by base in (0, 1): smaller base concentrates
// pressure more strongly on the best individuals.
type ExponentialRank[E individual.Encoding[E]] struct {
	component.Base[E]
	N        int
	RankBase float64
	Minimize bool
}

// NewExponentialRank returns an ExponentialRank selector. n must be
// positive; base must lie in (0, 1).
func NewExponentialRank[E individual.Encoding[E]](n int, base float64, minimize bool) (*ExponentialRank[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	if base <= 0 || base >= 1 {
		return nil, parameterf("base must lie in (0, 1), got %v", base)
	}
	return &ExponentialRank[E]{N: n, RankBase: base, Minimize: minimize}, nil
}

func (*ExponentialRank[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.ExponentialRank")
}

func (er *ExponentialRank[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	n := len(pop)
	norm := 0.0
	for i := 0; i < n; i++ {
		norm += math.Pow(er.RankBase, float64(i))
	}
	// best (rank n-1) gets the largest weight: base^(n-1-rank).
	weights, _ := rankWeights[E](pop, er.Minimize, func(rank, nn int) float64 {
		return math.Pow(er.RankBase, float64(nn-1-rank)) / norm
	})
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		out := make(population.Population[E], er.N)
		for i := range out {
			out[i] = pop[spinWheel(weights, r.Float64())].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}
