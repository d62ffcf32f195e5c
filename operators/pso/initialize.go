package pso

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// InitializeVelocities seeds one velocity vector per particle in the
// current population, each coordinate drawn uniformly from
// [-VMax, VMax]. Run once, before the first VelocityPositionUpdate; it
// overwrites any Velocities already in the registry.
type InitializeVelocities[E RealEncoding[E]] struct {
	component.Base[E]
	VMax float64
}

// NewInitializeVelocities returns an InitializeVelocities. vmax must be
// positive.
func NewInitializeVelocities[E RealEncoding[E]](vmax float64) (*InitializeVelocities[E], error) {
	if vmax <= 0 {
		return nil, parameterf("vmax must be positive, got %v", vmax)
	}
	return &InitializeVelocities[E]{VMax: vmax}, nil
}

func (*InitializeVelocities[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "pso.InitializeVelocities")
	component.Require[*rng.Random](r, "pso.InitializeVelocities")
}

func (c *InitializeVelocities[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s, "pso.InitializeVelocities")
	if err != nil {
		return err
	}
	vecs := make([]E, len(pop))
	err = withRandom(s, func(r *rng.Random) {
		for i := range pop {
			d := len([]float64(pop[i].Solution()))
			vecs[i] = E(sampleVelocity(r, d, c.VMax))
		}
	})
	if err != nil {
		return err
	}
	state.Insert(s, NewVelocities[E](vecs))
	return nil
}

// InitializeBests seeds each particle's personal best with its current
// (evaluated) individual and records the fittest of them as the initial
// global best. Run once, after the initial population has been
// evaluated; it overwrites any BestParticles/BestParticle already in the
// registry.
type InitializeBests[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

// NewInitializeBests returns an InitializeBests.
func NewInitializeBests[E individual.Encoding[E]](minimize bool) *InitializeBests[E] {
	return &InitializeBests[E]{Minimize: minimize}
}

func (*InitializeBests[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "pso.InitializeBests")
}

func (c *InitializeBests[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s, "pso.InitializeBests")
	if err != nil {
		return err
	}
	bests := make(population.Population[E], len(pop))
	for i := range pop {
		bests[i] = pop[i].Clone()
	}
	state.Insert(s, NewBestParticles[E](bests))

	global := &BestParticle[E]{}
	for i := range bests {
		if cur, ok := global.Get(); !ok || outranks[E](bests[i], cur, c.Minimize) {
			global.Set(bests[i].Clone())
		}
	}
	state.Insert(s, global)
	return nil
}
