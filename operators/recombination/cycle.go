package recombination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// CycleCrossover recombines consecutive pairs of permutation encodings
// by partitioning the indices into cycles (each cycle visiting the
// position where the other parent's value at the current position sits
// in this parent) and assigning alternating cycles to each child, so
// both children remain valid permutations. Unlike the other pairwise
// crossovers it always produces exactly two children per recombined
// pair. Applied with probability Pc per pair.
type CycleCrossover[E Permutation[E, T], T comparable] struct {
	component.Base[E]
	Pc float64
}

// NewCycleCrossover returns a CycleCrossover. pc must lie in [0, 1].
func NewCycleCrossover[E Permutation[E, T], T comparable](pc float64) (*CycleCrossover[E, T], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	return &CycleCrossover[E, T]{Pc: pc}, nil
}

func (*CycleCrossover[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.CycleCrossover")
}

func (c *CycleCrossover[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	parents, err := popParents[E](s, "recombination.CycleCrossover")
	if err != nil {
		return err
	}
	offspring := make(population.Population[E], 0, len(parents))
	var opErr error
	err = withRandom(s, func(r *rng.Random) {
		for i := 0; i+1 < len(parents); i += 2 {
			p1, p2 := parents[i], parents[i+1]
			if r.Float64() >= c.Pc {
				offspring = append(offspring, p1, p2)
				continue
			}
			a, b := []T(p1.Solution()), []T(p2.Solution())
			if len(a) != len(b) {
				opErr = layoutf("recombination.CycleCrossover", "parent lengths differ: %d vs %d", len(a), len(b))
				return
			}
			c1, c2 := cycleChildren(a, b)
			child1, child2 := p1.Clone(), p2.Clone()
			child1.SetSolution(E(c1))
			child2.SetSolution(E(c2))
			offspring = append(offspring, child1, child2)
		}
		if len(parents)%2 == 1 {
			offspring = append(offspring, parents[len(parents)-1])
		}
	})
	if err != nil {
		return err
	}
	if opErr != nil {
		if pushErr := pushOffspring[E](s, parents); pushErr != nil {
			return pushErr
		}
		return opErr
	}
	return pushOffspring[E](s, offspring)
}

func cycleChildren[T comparable](a, b []T) ([]T, []T) {
	n := len(a)
	indexOfA := make(map[T]int, n)
	for idx, v := range a {
		indexOfA[v] = idx
	}
	visited := make([]bool, n)
	child1 := make([]T, n)
	child2 := make([]T, n)
	cycleNum := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleNum++
		j := i
		for !visited[j] {
			visited[j] = true
			if cycleNum%2 == 1 {
				child1[j], child2[j] = a[j], b[j]
			} else {
				child1[j], child2[j] = b[j], a[j]
			}
			j = indexOfA[b[j]]
		}
	}
	return child1, child2
}
