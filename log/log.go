package log

import (
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/lens"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Entry is one lens's extracted value, tagged with the lens's name.
type Entry struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// Record is one fired hook point: the counters in effect at that moment,
// plus every entry extracted by the registered lenses.
type Record struct {
	Iteration  uint64  `yaml:"iteration"`
	Evaluation uint64  `yaml:"evaluation"`
	Entries    []Entry `yaml:"entries"`
}

// Trigger is an arbitrary condition deciding whether a hook point fires.
type Trigger[E individual.Encoding[E]] func(p problem.Interface[E], s *state.State) (bool, error)

// Log owns the two record streams spec.md §6 names and the triggers and
// lenses that fill them.
type Log[E individual.Encoding[E]] struct {
	perEvaluation []Record
	perIteration  []Record

	evalTriggers []Trigger[E]
	iterTriggers []Trigger[E]
	lenses       []lens.Erased[E]
}

// New returns an empty Log with no triggers or lenses registered.
func New[E individual.Encoding[E]]() *Log[E] { return &Log[E]{} }

// AddLens registers one or more lenses whose extracted values appear in
// every subsequently-recorded Entry slice.
func (l *Log[E]) AddLens(ls ...lens.Erased[E]) { l.lenses = append(l.lenses, ls...) }

// OnEvaluation registers a trigger evaluated at the per-evaluation hook.
func (l *Log[E]) OnEvaluation(t Trigger[E]) { l.evalTriggers = append(l.evalTriggers, t) }

// OnIteration registers a trigger evaluated at the per-iteration hook.
func (l *Log[E]) OnIteration(t Trigger[E]) { l.iterTriggers = append(l.iterTriggers, t) }

// PerEvaluation returns the recorded per-evaluation stream.
func (l *Log[E]) PerEvaluation() []Record { return l.perEvaluation }

// PerIteration returns the recorded per-iteration stream.
func (l *Log[E]) PerIteration() []Record { return l.perIteration }

// RecordEvaluation is the hook point for after each objective evaluation;
// the caller invokes it, the evaluator does not. It is a no-op unless at
// least one registered evaluation trigger fires.
func (l *Log[E]) RecordEvaluation(p problem.Interface[E], s *state.State) error {
	fired, err := anyFires(l.evalTriggers, p, s)
	if err != nil || !fired {
		return err
	}
	rec, err := l.capture(p, s)
	if err != nil {
		return err
	}
	l.perEvaluation = append(l.perEvaluation, rec)
	return nil
}

// RecordIteration is the hook point for after each completed loop
// iteration; the caller invokes it, component.Loop does not. It is a
// no-op unless at least one registered iteration trigger fires.
func (l *Log[E]) RecordIteration(p problem.Interface[E], s *state.State) error {
	fired, err := anyFires(l.iterTriggers, p, s)
	if err != nil || !fired {
		return err
	}
	rec, err := l.capture(p, s)
	if err != nil {
		return err
	}
	l.perIteration = append(l.perIteration, rec)
	return nil
}

func (l *Log[E]) capture(p problem.Interface[E], s *state.State) (Record, error) {
	entries := make([]Entry, 0, len(l.lenses))
	for _, ls := range l.lenses {
		v, err := ls.ExtractAny(p, s)
		if err != nil {
			return Record{}, err
		}
		entries = append(entries, Entry{Name: ls.Name(), Value: v})
	}
	iters, _ := state.GetValue[uint64, *counter.Iterations](s)
	evals, _ := state.GetValue[uint64, *counter.Evaluations](s)
	return Record{Iteration: iters, Evaluation: evals, Entries: entries}, nil
}

func anyFires[E individual.Encoding[E]](triggers []Trigger[E], p problem.Interface[E], s *state.State) (bool, error) {
	for _, t := range triggers {
		ok, err := t(p, s)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Clone returns a Log sharing this one's triggers and lens definitions
// (cloned via lens.Erased.CloneAny) but owning independent, empty record
// streams — the shape a fresh run needs when reusing one logging
// configuration across runs.
func (l *Log[E]) Clone() *Log[E] {
	out := &Log[E]{
		evalTriggers: append([]Trigger[E]{}, l.evalTriggers...),
		iterTriggers: append([]Trigger[E]{}, l.iterTriggers...),
		lenses:       make([]lens.Erased[E], len(l.lenses)),
	}
	for i, ls := range l.lenses {
		out.lenses[i] = ls.CloneAny()
	}
	return out
}
