package lens

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
)

// PopulationSize is the "current population size" lens spec.md §4.6
// names: the length of the top frame of the registry's population Stack.
func PopulationSize[E individual.Encoding[E]]() Lens[E, int] {
	return Shared[E, *population.Stack[E], int]("population-size", func(st *population.Stack[E]) int {
		p, err := st.Current()
		if err != nil {
			return 0
		}
		return len(p)
	})
}

// BestObjective is the "best objective value" lens: the extreme of the
// top population's objectives under the given ordering direction.
// minimize selects the smallest (Ordering == Less); maximize selects the
// largest.
func BestObjective[E individual.Encoding[E]](minimize bool) Lens[E, objective.Value] {
	return Shared[E, *population.Stack[E], objective.Value]("best-objective", func(st *population.Stack[E]) objective.Value {
		best, _ := bestOf[E](st, minimize)
		return best
	})
}

// BestSolution is the "best solution" lens: the encoding paired with
// BestObjective's extreme individual.
func BestSolution[E individual.Encoding[E]](minimize bool) Lens[E, E] {
	return Shared[E, *population.Stack[E], E]("best-solution", func(st *population.Stack[E]) E {
		_, sol := bestOf[E](st, minimize)
		return sol
	})
}

func bestOf[E individual.Encoding[E]](st *population.Stack[E], minimize bool) (objective.Value, E) {
	var zero E
	p, err := st.Current()
	if err != nil || len(p) == 0 {
		return nil, zero
	}
	var bestObj objective.Value
	bestSol := p[0].Solution()
	for i := range p {
		obj, ok := p[i].Objective()
		if !ok {
			continue
		}
		if bestObj == nil {
			bestObj = obj
			bestSol = p[i].Solution()
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
			bestObj = obj
			bestSol = p[i].Solution()
		}
	}
	return bestObj, bestSol
}
