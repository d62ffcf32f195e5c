package replacement

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// DiscardOffspring discards the offspring outright, leaving the parents
// as the surviving population.
type DiscardOffspring[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewDiscardOffspring[E individual.Encoding[E]]() *DiscardOffspring[E] {
	return &DiscardOffspring[E]{}
}

func (*DiscardOffspring[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.DiscardOffspring")
}

func (*DiscardOffspring[E]) Execute(_ problem.Interface[E], s *state.State) error {
	_, parents, err := popOffspringAndParents[E](s, "replacement.DiscardOffspring")
	if err != nil {
		return err
	}
	return pushSurvivors[E](s, parents)
}

// Generational keeps the first Max offspring, discarding the parents and
// any excess offspring. Offspring must number at least Max.
type Generational[E individual.Encoding[E]] struct {
	component.Base[E]
	Max int
}

func NewGenerational[E individual.Encoding[E]](max int) (*Generational[E], error) {
	if max <= 0 {
		return nil, parameterf("max must be positive, got %d", max)
	}
	return &Generational[E]{Max: max}, nil
}

func (*Generational[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.Generational")
}

func (g *Generational[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.Generational")
	if err != nil {
		return err
	}
	if len(offspring) < g.Max {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("replacement.Generational", "need at least %d offspring, have %d", g.Max, len(offspring))
	}
	return pushSurvivors[E](s, offspring[:g.Max].Clone())
}

// Merge concatenates parents and offspring into one surviving
// population.
type Merge[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewMerge[E individual.Encoding[E]]() *Merge[E] {
	return &Merge[E]{}
}

func (*Merge[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.Merge")
}

func (*Merge[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.Merge")
	if err != nil {
		return err
	}
	merged := make(population.Population[E], 0, len(parents)+len(offspring))
	merged = append(merged, parents...)
	merged = append(merged, offspring...)
	return pushSurvivors[E](s, merged)
}

// MuPlusLambda keeps the fittest Max individuals of parents union
// offspring.
type MuPlusLambda[E individual.Encoding[E]] struct {
	component.Base[E]
	Max      int
	Minimize bool
}

func NewMuPlusLambda[E individual.Encoding[E]](max int, minimize bool) (*MuPlusLambda[E], error) {
	if max <= 0 {
		return nil, parameterf("max must be positive, got %d", max)
	}
	return &MuPlusLambda[E]{Max: max, Minimize: minimize}, nil
}

func (*MuPlusLambda[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.MuPlusLambda")
}

func (m *MuPlusLambda[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.MuPlusLambda")
	if err != nil {
		return err
	}
	union := make(population.Population[E], 0, len(parents)+len(offspring))
	union = append(union, parents...)
	union = append(union, offspring...)
	if len(union) < m.Max {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("replacement.MuPlusLambda", "need at least %d individuals, have %d", m.Max, len(union))
	}
	order := sortedByFitness[E](union, m.Minimize)
	survivors := make(population.Population[E], m.Max)
	for i := 0; i < m.Max; i++ {
		survivors[i] = union[order[i]].Clone()
	}
	return pushSurvivors[E](s, survivors)
}

// MuCommaLambda keeps the fittest Max individuals of the offspring alone,
// discarding the parents entirely. Offspring must number at least Max.
type MuCommaLambda[E individual.Encoding[E]] struct {
	component.Base[E]
	Max      int
	Minimize bool
}

func NewMuCommaLambda[E individual.Encoding[E]](max int, minimize bool) (*MuCommaLambda[E], error) {
	if max <= 0 {
		return nil, parameterf("max must be positive, got %d", max)
	}
	return &MuCommaLambda[E]{Max: max, Minimize: minimize}, nil
}

func (*MuCommaLambda[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.MuCommaLambda")
}

func (m *MuCommaLambda[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.MuCommaLambda")
	if err != nil {
		return err
	}
	if len(offspring) < m.Max {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("replacement.MuCommaLambda", "need at least %d offspring, have %d", m.Max, len(offspring))
	}
	order := sortedByFitness[E](offspring, m.Minimize)
	survivors := make(population.Population[E], m.Max)
	for i := 0; i < m.Max; i++ {
		survivors[i] = offspring[order[i]].Clone()
	}
	return pushSurvivors[E](s, survivors)
}

// RandomReplacement keeps Max individuals drawn uniformly without
// repetition from parents union offspring.
type RandomReplacement[E individual.Encoding[E]] struct {
	component.Base[E]
	Max int
}

func NewRandomReplacement[E individual.Encoding[E]](max int) (*RandomReplacement[E], error) {
	if max <= 0 {
		return nil, parameterf("max must be positive, got %d", max)
	}
	return &RandomReplacement[E]{Max: max}, nil
}

func (*RandomReplacement[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "replacement.RandomReplacement")
	component.Require[*rng.Random](r, "replacement.RandomReplacement")
}

func (rr *RandomReplacement[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.RandomReplacement")
	if err != nil {
		return err
	}
	union := make(population.Population[E], 0, len(parents)+len(offspring))
	union = append(union, parents...)
	union = append(union, offspring...)
	if len(union) < rr.Max {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("replacement.RandomReplacement", "need at least %d individuals, have %d", rr.Max, len(union))
	}
	var survivors population.Population[E]
	err = withRandom[E](s, func(r *rng.Random) {
		idx := r.Perm(len(union))[:rr.Max]
		survivors = make(population.Population[E], rr.Max)
		for i, j := range idx {
			survivors[i] = union[j].Clone()
		}
	})
	if err != nil {
		return err
	}
	return pushSurvivors[E](s, survivors)
}

// KeepBetterAtIndex keeps, at each index, whichever of parent[i] or
// offspring[i] is better. Parents and offspring must have equal
// cardinality.
type KeepBetterAtIndex[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

func NewKeepBetterAtIndex[E individual.Encoding[E]](minimize bool) *KeepBetterAtIndex[E] {
	return &KeepBetterAtIndex[E]{Minimize: minimize}
}

func (*KeepBetterAtIndex[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReplacementInputs[E](r, "replacement.KeepBetterAtIndex")
}

func (k *KeepBetterAtIndex[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "replacement.KeepBetterAtIndex")
	if err != nil {
		return err
	}
	if len(offspring) != len(parents) {
		if pushErr := restoreTwo[E](s, offspring, parents); pushErr != nil {
			return pushErr
		}
		return layoutf("replacement.KeepBetterAtIndex", "parents (%d) and offspring (%d) must have equal cardinality", len(parents), len(offspring))
	}
	combined := append(population.Population[E]{}, parents...)
	combined = append(combined, offspring...)
	survivors := make(population.Population[E], len(parents))
	for i := range parents {
		if better[E](combined, len(parents)+i, i, k.Minimize) {
			survivors[i] = offspring[i].Clone()
		} else {
			survivors[i] = parents[i].Clone()
		}
	}
	return pushSurvivors[E](s, survivors)
}

// restoreTwo pushes parents then offspring back onto the stack, undoing
// popOffspringAndParents after a validation failure.
func restoreTwo[E individual.Encoding[E]](s *state.State, offspring, parents population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(parents)
	(*g.Get()).Push(offspring)
	return nil
}
