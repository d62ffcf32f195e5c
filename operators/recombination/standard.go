package recombination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// NPointCrossover recombines consecutive pairs of the current population
// at Points cut positions, with probability Pc per pair. KeepBoth
// controls whether both children are pushed (doubling the population) or
// only the first. An individual left without a partner (odd population
// size) passes through unchanged. Points must be at least 1 and less
// than every parent's length.
type NPointCrossover[E Sequence[E, T], T any] struct {
	component.Base[E]
	Pc       float64
	Points   int
	KeepBoth bool
}

// NewNPointCrossover returns an NPointCrossover. pc must lie in [0, 1];
// points must be at least 1.
func NewNPointCrossover[E Sequence[E, T], T any](pc float64, points int, keepBoth bool) (*NPointCrossover[E, T], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	if points < 1 {
		return nil, parameterf("points must be >= 1, got %d", points)
	}
	return &NPointCrossover[E, T]{Pc: pc, Points: points, KeepBoth: keepBoth}, nil
}

func (*NPointCrossover[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.NPointCrossover")
}

func (c *NPointCrossover[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	parents, err := popParents[E](s, "recombination.NPointCrossover")
	if err != nil {
		return err
	}
	offspring := make(population.Population[E], 0, len(parents))
	var opErr error
	err = withRandom(s, func(r *rng.Random) {
		for i := 0; i+1 < len(parents); i += 2 {
			p1, p2 := parents[i], parents[i+1]
			if r.Float64() >= c.Pc {
				offspring = append(offspring, p1)
				if c.KeepBoth {
					offspring = append(offspring, p2)
				}
				continue
			}
			a, b := []T(p1.Solution()), []T(p2.Solution())
			if len(a) != len(b) || c.Points >= len(a) {
				opErr = layoutf("recombination.NPointCrossover", "points (%d) must be < parent length (%d)", c.Points, len(a))
				return
			}
			cuts := distinctSortedCuts(r, len(a), c.Points)
			c1, c2 := nPointChildren(a, b, cuts)

			child1 := p1.Clone()
			child1.SetSolution(E(c1))
			offspring = append(offspring, child1)
			if c.KeepBoth {
				child2 := p2.Clone()
				child2.SetSolution(E(c2))
				offspring = append(offspring, child2)
			}
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

func distinctSortedCuts(r *rng.Random, n, points int) []int {
	seen := make(map[int]bool, points)
	cuts := make([]int, 0, points)
	for len(cuts) < points {
		c := 1 + r.Intn(n-1)
		if seen[c] {
			continue
		}
		seen[c] = true
		cuts = append(cuts, c)
	}
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j-1] > cuts[j]; j-- {
			cuts[j-1], cuts[j] = cuts[j], cuts[j-1]
		}
	}
	return cuts
}

func nPointChildren[T any](a, b []T, cuts []int) ([]T, []T) {
	n := len(a)
	child1 := make([]T, n)
	child2 := make([]T, n)
	cutIdx := 0
	fromA := true
	for i := 0; i < n; i++ {
		if cutIdx < len(cuts) && i == cuts[cutIdx] {
			fromA = !fromA
			cutIdx++
		}
		if fromA {
			child1[i], child2[i] = a[i], b[i]
		} else {
			child1[i], child2[i] = b[i], a[i]
		}
	}
	return child1, child2
}

// UniformCrossover recombines consecutive pairs of the current
// population, swapping each coordinate independently with probability
// 0.5, applied with probability Pc per pair.
type UniformCrossover[E Sequence[E, T], T any] struct {
	component.Base[E]
	Pc       float64
	KeepBoth bool
}

// NewUniformCrossover returns a UniformCrossover. pc must lie in [0, 1].
func NewUniformCrossover[E Sequence[E, T], T any](pc float64, keepBoth bool) (*UniformCrossover[E, T], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	return &UniformCrossover[E, T]{Pc: pc, KeepBoth: keepBoth}, nil
}

func (*UniformCrossover[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.UniformCrossover")
}

func (c *UniformCrossover[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	parents, err := popParents[E](s, "recombination.UniformCrossover")
	if err != nil {
		return err
	}
	offspring := make(population.Population[E], 0, len(parents))
	err = withRandom(s, func(r *rng.Random) {
		for i := 0; i+1 < len(parents); i += 2 {
			p1, p2 := parents[i], parents[i+1]
			if r.Float64() >= c.Pc {
				offspring = append(offspring, p1)
				if c.KeepBoth {
					offspring = append(offspring, p2)
				}
				continue
			}
			a, b := []T(p1.Solution()), []T(p2.Solution())
			n := len(a)
			if len(b) < n {
				n = len(b)
			}
			c1 := make([]T, n)
			c2 := make([]T, n)
			for j := 0; j < n; j++ {
				if r.Float64() < 0.5 {
					c1[j], c2[j] = a[j], b[j]
				} else {
					c1[j], c2[j] = b[j], a[j]
				}
			}
			child1 := p1.Clone()
			child1.SetSolution(E(c1))
			offspring = append(offspring, child1)
			if c.KeepBoth {
				child2 := p2.Clone()
				child2.SetSolution(E(c2))
				offspring = append(offspring, child2)
			}
		}
		if len(parents)%2 == 1 {
			offspring = append(offspring, parents[len(parents)-1])
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, offspring)
}

// ArithmeticCrossover recombines consecutive pairs via a single uniform
// blend weight alpha per pair: child1 = alpha*x1 + (1-alpha)*x2, child2 =
// the complementary blend, applied with probability Pc per pair.
type ArithmeticCrossover[E RealEncoding[E]] struct {
	component.Base[E]
	Pc       float64
	KeepBoth bool
}

// NewArithmeticCrossover returns an ArithmeticCrossover. pc must lie in
// [0, 1].
func NewArithmeticCrossover[E RealEncoding[E]](pc float64, keepBoth bool) (*ArithmeticCrossover[E], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	return &ArithmeticCrossover[E]{Pc: pc, KeepBoth: keepBoth}, nil
}

func (*ArithmeticCrossover[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.ArithmeticCrossover")
}

func (c *ArithmeticCrossover[E]) Execute(_ problem.Interface[E], s *state.State) error {
	parents, err := popParents[E](s, "recombination.ArithmeticCrossover")
	if err != nil {
		return err
	}
	offspring := make(population.Population[E], 0, len(parents))
	err = withRandom(s, func(r *rng.Random) {
		for i := 0; i+1 < len(parents); i += 2 {
			p1, p2 := parents[i], parents[i+1]
			if r.Float64() >= c.Pc {
				offspring = append(offspring, p1)
				if c.KeepBoth {
					offspring = append(offspring, p2)
				}
				continue
			}
			a, b := []float64(p1.Solution()), []float64(p2.Solution())
			n := len(a)
			if len(b) < n {
				n = len(b)
			}
			alpha := r.Float64()
			c1 := make([]float64, n)
			c2 := make([]float64, n)
			for j := 0; j < n; j++ {
				c1[j] = alpha*a[j] + (1-alpha)*b[j]
				c2[j] = (1-alpha)*a[j] + alpha*b[j]
			}
			child1 := p1.Clone()
			child1.SetSolution(E(c1))
			offspring = append(offspring, child1)
			if c.KeepBoth {
				child2 := p2.Clone()
				child2.SetSolution(E(c2))
				offspring = append(offspring, child2)
			}
		}
		if len(parents)%2 == 1 {
			offspring = append(offspring, parents[len(parents)-1])
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, offspring)
}
