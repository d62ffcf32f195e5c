package measures

import (
	"math"

	"github.com/mahf-opt/mahf/archive"
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// StepSizeMeasure is implemented by a component that compares a previous
// and current population snapshot, returning a per-entry step size and
// a parallel per-entry variance (the second slice is all zeros for
// measures, like EuclideanStepSize, with no natural per-entry variance
// of their own).
type StepSizeMeasure[E RealEncoding[E]] interface {
	Measure(p problem.Interface[E], previous, current []E) (steps, vars []float64)
}

// StepSize is the step size between two population snapshots as
// measured by the owning component M.
type StepSize[M any] struct {
	mean     float64
	variance float64
	steps    []float64
	vars     []float64
}

// Mean returns the mean of the per-entry step sizes.
func (s StepSize[M]) Mean() float64 { return s.mean }

// Variance returns the variance of the per-entry step sizes.
func (s *StepSize[M]) Variance() float64 { return s.variance }

// Steps returns the per-entry step sizes (per-individual or
// per-dimension, depending on the owning measure). Callers must not
// mutate the returned slice.
func (s *StepSize[M]) Steps() []float64 { return s.steps }

// Vars returns the per-entry variances, parallel to Steps. Not every
// measure fills this in meaningfully; EuclideanStepSize leaves it zero.
func (s *StepSize[M]) Vars() []float64 { return s.vars }

func (s *StepSize[M]) update(steps, vars []float64) {
	s.steps, s.vars = steps, vars
	s.mean = meanOf(steps)
	s.variance = varianceOf(steps)
}

// measureStepSize is the shared Execute body every StepSizeMeasure
// component calls into: read the previous snapshot from
// archive.IntermediateArchive[E], the current one off the top of the
// population stack, and fold the comparison into StepSize[M].
func measureStepSize[E RealEncoding[E], M any](sm StepSizeMeasure[E], p problem.Interface[E], s *state.State, owner string) error {
	gp, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	current, err := (*gp.Get()).Current()
	gp.Release()
	if err != nil {
		return layoutf(owner, "%v", err)
	}

	ga, err := state.BorrowMut[archive.IntermediateArchive[E]](s)
	if err != nil {
		return err
	}
	previous := ga.Get().Population()
	ga.Release()

	var steps, vars []float64
	if len(current) == 0 || len(previous) == 0 {
		steps, vars = []float64{0}, []float64{0}
	} else {
		steps, vars = sm.Measure(p, solutionsOf(previous), solutionsOf(current))
	}

	e := state.EntryOf[StepSize[M]](s)
	e.OrInsert(StepSize[M]{})
	e.AndModify(func(st *StepSize[M]) { st.update(steps, vars) })
	return nil
}

// EuclideanStepSize measures, per paired individual, the Euclidean
// distance between its previous and current solution.
type EuclideanStepSize[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewEuclideanStepSize[E RealEncoding[E]]() *EuclideanStepSize[E] {
	return &EuclideanStepSize[E]{}
}

func (*EuclideanStepSize[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireStepSizeInputs[E](r, "measures.EuclideanStepSize")
}

func (c *EuclideanStepSize[E]) Measure(_ problem.Interface[E], previous, current []E) ([]float64, []float64) {
	n := minLen(previous, current)
	steps := make([]float64, n)
	vars := make([]float64, n)
	for i := 0; i < n; i++ {
		steps[i] = euclidean([]float64(previous[i]), []float64(current[i]))
	}
	return steps, vars
}

func (c *EuclideanStepSize[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureStepSize[E, *EuclideanStepSize[E]](c, p, s, "measures.EuclideanStepSize")
}

// PositionalStepSize measures, per paired individual, the mean and
// variance of the absolute per-coordinate differences between its
// previous and current solution.
type PositionalStepSize[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewPositionalStepSize[E RealEncoding[E]]() *PositionalStepSize[E] {
	return &PositionalStepSize[E]{}
}

func (*PositionalStepSize[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireStepSizeInputs[E](r, "measures.PositionalStepSize")
}

func (c *PositionalStepSize[E]) Measure(_ problem.Interface[E], previous, current []E) ([]float64, []float64) {
	n := minLen(previous, current)
	steps := make([]float64, n)
	vars := make([]float64, n)
	for i := 0; i < n; i++ {
		p, q := []float64(previous[i]), []float64(current[i])
		d := minLenSlice(p, q)
		diffs := make([]float64, d)
		for k := 0; k < d; k++ {
			diffs[k] = math.Abs(p[k] - q[k])
		}
		steps[i] = meanOf(diffs)
		vars[i] = varianceOf(diffs)
	}
	return steps, vars
}

func (c *PositionalStepSize[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureStepSize[E, *PositionalStepSize[E]](c, p, s, "measures.PositionalStepSize")
}

// DimensionalStepSize measures, per dimension, the mean and variance of
// the absolute difference between previous and current solutions across
// every paired individual.
type DimensionalStepSize[E RealEncoding[E]] struct {
	component.Base[E]
}

func NewDimensionalStepSize[E RealEncoding[E]]() *DimensionalStepSize[E] {
	return &DimensionalStepSize[E]{}
}

func (*DimensionalStepSize[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireStepSizeInputs[E](r, "measures.DimensionalStepSize")
}

func (c *DimensionalStepSize[E]) Measure(_ problem.Interface[E], previous, current []E) ([]float64, []float64) {
	n := minLen(previous, current)
	if n == 0 {
		return nil, nil
	}
	d := minLenSlice([]float64(previous[0]), []float64(current[0]))
	steps := make([]float64, d)
	vars := make([]float64, d)
	for k := 0; k < d; k++ {
		diffs := make([]float64, n)
		for i := 0; i < n; i++ {
			diffs[i] = math.Abs([]float64(previous[i])[k] - []float64(current[i])[k])
		}
		steps[k] = meanOf(diffs)
		vars[k] = varianceOf(diffs)
	}
	return steps, vars
}

func (c *DimensionalStepSize[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureStepSize[E, *DimensionalStepSize[E]](c, p, s, "measures.DimensionalStepSize")
}

func requireStepSizeInputs[E RealEncoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[archive.IntermediateArchive[E]](r, owner)
}

func minLen[E any](a, b []E) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

func minLenSlice(a, b []float64) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func varianceOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := meanOf(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(xs))
}
