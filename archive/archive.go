package archive

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// BestIndividualsArchive records one individual per call to its owning
// component, oldest first — the history measures/convergence.go's
// convergence-rate measures compare the last two entries of.
type BestIndividualsArchive[E individual.Encoding[E]] struct {
	individuals []individual.Individual[E]
}

// Individuals returns the archived history, oldest first. Callers must
// not mutate the returned slice.
func (a *BestIndividualsArchive[E]) Individuals() []individual.Individual[E] {
	return a.individuals
}

func (a *BestIndividualsArchive[E]) push(ind individual.Individual[E]) {
	a.individuals = append(a.individuals, ind)
}

// IntermediateArchive holds the population snapshot most recently
// recorded by TrackIntermediatePopulation — a single slot, overwritten
// wholesale, not a history.
type IntermediateArchive[E individual.Encoding[E]] struct {
	pop population.Population[E]
}

// Population returns the archived snapshot. Callers must not mutate the
// returned population.
func (a IntermediateArchive[E]) Population() population.Population[E] {
	return a.pop
}

func (a *IntermediateArchive[E]) set(pop population.Population[E]) {
	a.pop = pop
}

// TrackBestIndividual appends the current population's best evaluated
// individual to BestIndividualsArchive[E] every Execute call. Place it
// after evaluation and before any convergence-rate measure that reads
// the archive, since a measure sees only what has already been pushed.
type TrackBestIndividual[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

// NewTrackBestIndividual returns a TrackBestIndividual.
func NewTrackBestIndividual[E individual.Encoding[E]](minimize bool) *TrackBestIndividual[E] {
	return &TrackBestIndividual[E]{Minimize: minimize}
}

func (*TrackBestIndividual[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "archive.TrackBestIndividual")
}

func (c *TrackBestIndividual[E]) Execute(_ problem.Interface[E], s *state.State) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	pop, err := (*g.Get()).Current()
	g.Release()
	if err != nil {
		return layoutf("archive.TrackBestIndividual", "%v", err)
	}

	best, ok := bestOf[E](pop, c.Minimize)
	if !ok {
		return nil
	}

	e := state.EntryOf[BestIndividualsArchive[E]](s)
	e.OrInsert(BestIndividualsArchive[E]{})
	e.AndModify(func(a *BestIndividualsArchive[E]) { a.push(best.Clone()) })
	return nil
}

// TrackIntermediatePopulation overwrites IntermediateArchive[E] with a
// clone of the current population every Execute call. Place it after the
// step-size measures that read the archive in the same iteration, so
// they compare against the population that existed before this call.
type TrackIntermediatePopulation[E individual.Encoding[E]] struct {
	component.Base[E]
}

// NewTrackIntermediatePopulation returns a TrackIntermediatePopulation.
func NewTrackIntermediatePopulation[E individual.Encoding[E]]() *TrackIntermediatePopulation[E] {
	return &TrackIntermediatePopulation[E]{}
}

func (*TrackIntermediatePopulation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "archive.TrackIntermediatePopulation")
}

func (c *TrackIntermediatePopulation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	pop, err := (*g.Get()).Current()
	g.Release()
	if err != nil {
		return layoutf("archive.TrackIntermediatePopulation", "%v", err)
	}

	e := state.EntryOf[IntermediateArchive[E]](s)
	e.OrInsert(IntermediateArchive[E]{})
	e.AndModify(func(a *IntermediateArchive[E]) { a.set(pop.Clone()) })
	return nil
}

func bestOf[E individual.Encoding[E]](pop population.Population[E], minimize bool) (individual.Individual[E], bool) {
	var best individual.Individual[E]
	var bestObj objective.Value
	found := false
	for i := range pop {
		obj, ok := pop[i].Objective()
		if !ok {
			continue
		}
		if bestObj == nil {
			bestObj, best, found = obj, pop[i], true
			continue
		}
		ord, comparable := obj.Compare(bestObj)
		if !comparable {
			continue
		}
		isBetter := ord == objective.Less
		if !minimize {
			isBetter = ord == objective.Greater
		}
		if isBetter {
			bestObj, best = obj, pop[i]
		}
	}
	return best, found
}
