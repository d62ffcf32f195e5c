package measures

import (
	"math"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"

	"github.com/mahf-opt/mahf/component"
)

// RealEncoding is satisfied by any encoding backed by a []float64 — what
// every diversity/step-size measure needs to read coordinates out of a
// solution.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// DiversityMeasure is implemented by a component that reduces a
// population of solutions to one non-negative diversity scalar.
type DiversityMeasure[E RealEncoding[E]] interface {
	Measure(p problem.Interface[E], solutions []E) float64
}

// Diversity is the diversity of the population as measured by the
// owning component M, normalized against the largest value observed so
// far so it reads as a 0-1 ratio regardless of the measure's native
// scale. M is never instantiated; it exists only to give each measuring
// component's Diversity its own registry slot.
type Diversity[M any] struct {
	value float64
	max   float64
}

// Value returns the normalized diversity in [0, 1].
func (d Diversity[M]) Value() float64 { return d.value }

// update folds raw into the running maximum and re-normalizes. raw == 0
// the first time leaves value at 0 rather than dividing 0/0, since max
// is still 0 in that case.
func (d *Diversity[M]) update(raw float64) {
	if raw > d.max {
		d.max = raw
	}
	if d.max == 0 {
		d.value = 0
		return
	}
	d.value = raw / d.max
}

// measureDiversity is the shared Execute body every DiversityMeasure
// component calls into: peek the current population, measure it (or
// treat an empty population as diversity 0), and fold the result into
// Diversity[M].
func measureDiversity[E RealEncoding[E], M any](dm DiversityMeasure[E], p problem.Interface[E], s *state.State, owner string) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	pop, err := (*g.Get()).Current()
	g.Release()
	if err != nil {
		return layoutf(owner, "%v", err)
	}

	raw := 0.0
	if len(pop) > 0 {
		raw = dm.Measure(p, solutionsOf(pop))
	}

	e := state.EntryOf[Diversity[M]](s)
	e.OrInsert(Diversity[M]{})
	e.AndModify(func(d *Diversity[M]) { d.update(raw) })
	return nil
}

func solutionsOf[E individual.Encoding[E]](pop population.Population[E]) []E {
	out := make([]E, len(pop))
	for i := range pop {
		out[i] = pop[i].Solution()
	}
	return out
}

// DimensionWiseDiversity measures, per dimension, the mean absolute
// deviation from that dimension's mean across the population, averaged
// over dimensions.
type DimensionWiseDiversity[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewDimensionWiseDiversity[E RealEncoding[E]]() *DimensionWiseDiversity[E] {
	return &DimensionWiseDiversity[E]{}
}

func (*DimensionWiseDiversity[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.DimensionWiseDiversity")
}

func (c *DimensionWiseDiversity[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := float64(len(solutions))
	d := len([]float64(solutions[0]))
	total := 0.0
	for k := 0; k < d; k++ {
		mean := 0.0
		for _, s := range solutions {
			mean += []float64(s)[k]
		}
		mean /= n
		dev := 0.0
		for _, s := range solutions {
			dev += math.Abs([]float64(s)[k] - mean)
		}
		total += dev / n
	}
	return total / float64(d)
}

func (c *DimensionWiseDiversity[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *DimensionWiseDiversity[E]](c, p, s, "measures.DimensionWiseDiversity")
}

// PairwiseDistanceDiversity measures the mean Euclidean distance between
// every pair of solutions. Uses the textbook mean-pairwise-distance
// formula, resetting the distance accumulator for every pair.
type PairwiseDistanceDiversity[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewPairwiseDistanceDiversity[E RealEncoding[E]]() *PairwiseDistanceDiversity[E] {
	return &PairwiseDistanceDiversity[E]{}
}

func (*PairwiseDistanceDiversity[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.PairwiseDistanceDiversity")
}

func (c *PairwiseDistanceDiversity[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := len(solutions)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			sum += euclidean([]float64(solutions[i]), []float64(solutions[j]))
		}
	}
	return sum * 2.0 / (float64(n) * (float64(n) - 1.0))
}

func (c *PairwiseDistanceDiversity[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *PairwiseDistanceDiversity[E]](c, p, s, "measures.PairwiseDistanceDiversity")
}

// TrueDiversity measures the square root of the summed per-dimension
// population variances, divided by the number of dimensions.
type TrueDiversity[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewTrueDiversity[E RealEncoding[E]]() *TrueDiversity[E] {
	return &TrueDiversity[E]{}
}

func (*TrueDiversity[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.TrueDiversity")
}

func (c *TrueDiversity[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := float64(len(solutions))
	d := len([]float64(solutions[0]))
	total := 0.0
	for k := 0; k < d; k++ {
		mean, sqSum := 0.0, 0.0
		for _, s := range solutions {
			v := []float64(s)[k]
			mean += v
			sqSum += v * v
		}
		mean /= n
		sqSum /= n
		total += sqSum - mean*mean
	}
	if total < 0 {
		total = 0
	}
	return math.Sqrt(total) / float64(d)
}

func (c *TrueDiversity[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *TrueDiversity[E]](c, p, s, "measures.TrueDiversity")
}

// DistanceToAveragePointDiversity measures the mean Euclidean distance
// of every solution to the population's per-dimension centroid.
type DistanceToAveragePointDiversity[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewDistanceToAveragePointDiversity[E RealEncoding[E]]() *DistanceToAveragePointDiversity[E] {
	return &DistanceToAveragePointDiversity[E]{}
}

func (*DistanceToAveragePointDiversity[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.DistanceToAveragePointDiversity")
}

func (c *DistanceToAveragePointDiversity[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := float64(len(solutions))
	d := len([]float64(solutions[0]))
	centroid := make([]float64, d)
	for k := 0; k < d; k++ {
		for _, s := range solutions {
			centroid[k] += []float64(s)[k]
		}
		centroid[k] /= n
	}
	sum := 0.0
	for _, s := range solutions {
		sum += euclidean([]float64(s), centroid)
	}
	return sum / n
}

func (c *DistanceToAveragePointDiversity[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *DistanceToAveragePointDiversity[E]](c, p, s, "measures.DistanceToAveragePointDiversity")
}

// MinimumIndividualDistance sums, over every solution, its distance to
// its nearest neighbor in the population. Unlike the other diversity
// measures this is a raw sum, not a mean.
type MinimumIndividualDistance[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewMinimumIndividualDistance[E RealEncoding[E]]() *MinimumIndividualDistance[E] {
	return &MinimumIndividualDistance[E]{}
}

func (*MinimumIndividualDistance[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.MinimumIndividualDistance")
}

func (c *MinimumIndividualDistance[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := len(solutions)
	sum := 0.0
	for i := 0; i < n; i++ {
		min := -1.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := euclidean([]float64(solutions[i]), []float64(solutions[j]))
			if min < 0 || dist < min {
				min = dist
			}
		}
		if min > 0 {
			sum += min
		}
	}
	return sum
}

func (c *MinimumIndividualDistance[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *MinimumIndividualDistance[E]](c, p, s, "measures.MinimumIndividualDistance")
}

// RadiusDiversity greedily grows a subset of solutions by always adding
// the unselected point farthest (in minimum distance) from the current
// subset, starting from the pair with the largest distance between them,
// and sums each added point's selection distance. A furthest-point-
// traversal diversity measure, following Mascarenhas et al.'s radius
// criterion.
type RadiusDiversity[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewRadiusDiversity[E RealEncoding[E]]() *RadiusDiversity[E] {
	return &RadiusDiversity[E]{}
}

func (*RadiusDiversity[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireMeasureInputs[E](r, "measures.RadiusDiversity")
}

func (c *RadiusDiversity[E]) Measure(_ problem.Interface[E], solutions []E) float64 {
	n := len(solutions)
	if n < 2 {
		return 0
	}
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = euclidean([]float64(solutions[i]), []float64(solutions[j]))
		}
	}

	farI, farJ, farD := 0, 1, dist[0][1]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist[i][j] > farD {
				farI, farJ, farD = i, j, dist[i][j]
			}
		}
	}

	selected := map[int]bool{farI: true, farJ: true}
	sigmas := []float64{farD}
	for len(selected) < n {
		bestPoint, bestMinDist := -1, -1.0
		for i := 0; i < n; i++ {
			if selected[i] {
				continue
			}
			min := math.Inf(1)
			for j := range selected {
				if dist[i][j] < min {
					min = dist[i][j]
				}
			}
			if min > bestMinDist {
				bestPoint, bestMinDist = i, min
			}
		}
		selected[bestPoint] = true
		sigmas = append(sigmas, bestMinDist)
	}

	sum := 0.0
	for _, v := range sigmas {
		sum += v
	}
	return sum
}

func (c *RadiusDiversity[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureDiversity[E, *RadiusDiversity[E]](c, p, s, "measures.RadiusDiversity")
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for k := range a {
		diff := a[k] - b[k]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

func requireMeasureInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
}
