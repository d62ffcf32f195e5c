package pso

import (
	"sort"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// replaceIndices removes the parents at indices (and their matched
// Velocities/BestParticles entries) and appends offspring in their
// place, each seeded with a freshly sampled velocity and a personal best
// of itself. indices need not be sorted; len(indices) must equal
// len(offspring).
func replaceIndices[E RealEncoding[E]](s *state.State, owner string, vmax float64, indices []int, offspring, parents population.Population[E]) error {
	vg, err := state.BorrowMut[*Velocities[E]](s)
	if err != nil {
		return err
	}
	defer vg.Release()
	velocities := *vg.Get()

	bg, err := state.BorrowMut[*BestParticles[E]](s)
	if err != nil {
		return err
	}
	defer bg.Release()
	bests := *bg.Get()

	survivors := parents.Clone()
	descending := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(descending)))
	for _, idx := range descending {
		survivors = append(survivors[:idx], survivors[idx+1:]...)
		velocities.RemoveAt(idx)
		bests.RemoveAt(idx)
	}

	err = withRandom(s, func(r *rng.Random) {
		for i := range offspring {
			ind := offspring[i].Clone()
			survivors = append(survivors, ind)
			bests.Append(ind.Clone())
			d := len([]float64(ind.Solution()))
			velocities.Append(E(sampleVelocity(r, d, vmax)))
		}
	})
	if err != nil {
		return err
	}
	return pushSurvivors[E](s, survivors)
}

func validateReplaceCount[E RealEncoding[E]](s *state.State, owner string, n int, offspring, parents population.Population[E]) error {
	if n <= len(parents) && n <= len(offspring) {
		return nil
	}
	if err := restoreTwo[E](s, offspring, parents); err != nil {
		return err
	}
	return layoutf(owner, "need at least %d parents and %d offspring, have %d parents, %d offspring", n, n, len(parents), len(offspring))
}

// ReplaceNWorstPSO discards the N worst-ranked parents along with their
// Velocities/BestParticles, replacing them with the first N offspring
// (fresh velocity, personal best of themselves). The remaining parents
// and their swarm state are left untouched.
type ReplaceNWorstPSO[E RealEncoding[E]] struct {
	component.Base[E]
	N        int
	Minimize bool
	VMax     float64
}

// NewReplaceNWorstPSO returns a ReplaceNWorstPSO. n and vmax must be
// positive.
func NewReplaceNWorstPSO[E RealEncoding[E]](n int, minimize bool, vmax float64) (*ReplaceNWorstPSO[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	if vmax <= 0 {
		return nil, parameterf("vmax must be positive, got %v", vmax)
	}
	return &ReplaceNWorstPSO[E]{N: n, Minimize: minimize, VMax: vmax}, nil
}

func (*ReplaceNWorstPSO[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requirePSOReplacementInputs[E](r, "pso.ReplaceNWorstPSO")
}

func (c *ReplaceNWorstPSO[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "pso.ReplaceNWorstPSO")
	if err != nil {
		return err
	}
	if err := validateReplaceCount[E](s, "pso.ReplaceNWorstPSO", c.N, offspring, parents); err != nil {
		return err
	}
	order := sortedByFitness[E](parents, c.Minimize)
	worst := append([]int(nil), order[len(order)-c.N:]...)
	return replaceIndices[E](s, "pso.ReplaceNWorstPSO", c.VMax, worst, offspring[:c.N].Clone(), parents)
}

// ReplaceNBestPSO discards the N best-ranked parents along with their
// Velocities/BestParticles, replacing them with the first N offspring.
// An alternative refresh strategy to ReplaceNWorstPSO for swarms that
// want to force diversity into their currently-fittest particles.
type ReplaceNBestPSO[E RealEncoding[E]] struct {
	component.Base[E]
	N        int
	Minimize bool
	VMax     float64
}

// NewReplaceNBestPSO returns a ReplaceNBestPSO. n and vmax must be
// positive.
func NewReplaceNBestPSO[E RealEncoding[E]](n int, minimize bool, vmax float64) (*ReplaceNBestPSO[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	if vmax <= 0 {
		return nil, parameterf("vmax must be positive, got %v", vmax)
	}
	return &ReplaceNBestPSO[E]{N: n, Minimize: minimize, VMax: vmax}, nil
}

func (*ReplaceNBestPSO[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requirePSOReplacementInputs[E](r, "pso.ReplaceNBestPSO")
}

func (c *ReplaceNBestPSO[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "pso.ReplaceNBestPSO")
	if err != nil {
		return err
	}
	if err := validateReplaceCount[E](s, "pso.ReplaceNBestPSO", c.N, offspring, parents); err != nil {
		return err
	}
	order := sortedByFitness[E](parents, c.Minimize)
	best := append([]int(nil), order[:c.N]...)
	return replaceIndices[E](s, "pso.ReplaceNBestPSO", c.VMax, best, offspring[:c.N].Clone(), parents)
}

// ReplaceNRandomPSO discards N parents chosen uniformly without
// repetition, along with their Velocities/BestParticles, replacing them
// with the first N offspring.
type ReplaceNRandomPSO[E RealEncoding[E]] struct {
	component.Base[E]
	N    int
	VMax float64
}

// NewReplaceNRandomPSO returns a ReplaceNRandomPSO. n and vmax must be
// positive.
func NewReplaceNRandomPSO[E RealEncoding[E]](n int, vmax float64) (*ReplaceNRandomPSO[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	if vmax <= 0 {
		return nil, parameterf("vmax must be positive, got %v", vmax)
	}
	return &ReplaceNRandomPSO[E]{N: n, VMax: vmax}, nil
}

func (*ReplaceNRandomPSO[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requirePSOReplacementInputs[E](r, "pso.ReplaceNRandomPSO")
}

func (c *ReplaceNRandomPSO[E]) Execute(_ problem.Interface[E], s *state.State) error {
	offspring, parents, err := popOffspringAndParents[E](s, "pso.ReplaceNRandomPSO")
	if err != nil {
		return err
	}
	if err := validateReplaceCount[E](s, "pso.ReplaceNRandomPSO", c.N, offspring, parents); err != nil {
		return err
	}
	var idx []int
	err = withRandom(s, func(r *rng.Random) {
		idx = append([]int(nil), r.Perm(len(parents))[:c.N]...)
	})
	if err != nil {
		return err
	}
	return replaceIndices[E](s, "pso.ReplaceNRandomPSO", c.VMax, idx, offspring[:c.N].Clone(), parents)
}
