package counter

import "github.com/mahf-opt/mahf/state"

// Iterations counts completed Loop iterations. Per spec.md §4.2, iteration
// k denotes "k completed iterations": it starts at 0 and is incremented
// after the loop body executes, not before.
type Iterations struct{ n uint64 }

func (i *Iterations) Value() uint64     { return i.n }
func (i *Iterations) SetValue(v uint64) { i.n = v }
func (i *Iterations) Inc()              { i.n++ }

// Evaluations counts objective evaluations performed by the evaluator.
type Evaluations struct{ n uint64 }

func (e *Evaluations) Value() uint64     { return e.n }
func (e *Evaluations) SetValue(v uint64) { e.n = v }
func (e *Evaluations) Add(n uint64)      { e.n += n }

// Progress reads a uint64 counter of type T from s and returns
// min(1, current/max) as a float64. It returns 0 if max is 0, avoiding a
// division by zero for termination conditions configured with a zero
// budget rather than erroring out of what is, functionally, "already done".
func Progress[T state.Scalar[uint64]](s *state.State, max uint64, id ...any) (float64, error) {
	cur, err := state.GetValue[uint64, T](s, id...)
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return 0, nil
	}
	ratio := float64(cur) / float64(max)
	if ratio > 1 {
		ratio = 1
	}
	return ratio, nil
}
