package pso

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// VelocityPositionUpdate advances every particle one step:
//
//	v <- w*v + c1*r1*(xp-x) + c2*r2*(xg-x)
//	v <- clamp(v, -VMax, VMax)
//	x <- x+v
//
// w is read from the registry-resident InertiaWeight each call, so a
// separate component can anneal it between iterations; r1 and r2 are
// drawn once per particle. Requires Velocities, BestParticles and
// BestParticle already populated (see InitializeVelocities,
// InitializeBests).
type VelocityPositionUpdate[E RealEncoding[E]] struct {
	component.Base[E]
	C1, C2, VMax float64
}

// NewVelocityPositionUpdate returns a VelocityPositionUpdate. c1, c2 and
// vmax must be positive.
func NewVelocityPositionUpdate[E RealEncoding[E]](c1, c2, vmax float64) (*VelocityPositionUpdate[E], error) {
	if c1 <= 0 || c2 <= 0 {
		return nil, parameterf("c1 (%v) and c2 (%v) must be positive", c1, c2)
	}
	if vmax <= 0 {
		return nil, parameterf("vmax must be positive, got %v", vmax)
	}
	return &VelocityPositionUpdate[E]{C1: c1, C2: c2, VMax: vmax}, nil
}

func (*VelocityPositionUpdate[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "pso.VelocityPositionUpdate")
	component.Require[*rng.Random](r, "pso.VelocityPositionUpdate")
	component.Require[*Velocities[E]](r, "pso.VelocityPositionUpdate")
	component.Require[*BestParticles[E]](r, "pso.VelocityPositionUpdate")
	component.Require[*BestParticle[E]](r, "pso.VelocityPositionUpdate")
	component.Require[*InertiaWeight](r, "pso.VelocityPositionUpdate")
}

func (c *VelocityPositionUpdate[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popCurrent[E](s, "pso.VelocityPositionUpdate")
	if err != nil {
		return err
	}

	wg, err := state.BorrowMut[*InertiaWeight](s)
	if err != nil {
		return err
	}
	w := (*wg.Get()).W
	wg.Release()

	vg, err := state.BorrowMut[*Velocities[E]](s)
	if err != nil {
		return err
	}
	velocities := *vg.Get()

	bg, err := state.BorrowMut[*BestParticles[E]](s)
	if err != nil {
		vg.Release()
		return err
	}
	bests := *bg.Get()

	gg, err := state.BorrowMut[*BestParticle[E]](s)
	if err != nil {
		vg.Release()
		bg.Release()
		return err
	}
	global, hasGlobal := (*gg.Get()).Get()

	if !hasGlobal {
		vg.Release()
		bg.Release()
		gg.Release()
		return layoutf("pso.VelocityPositionUpdate", "no global best recorded yet")
	}

	err = withRandom(s, func(r *rng.Random) {
		gx := []float64(global.Solution())
		for i := range pop {
			x := []float64(pop[i].Solution())
			vel := []float64(velocities.At(i))
			px := []float64(bests.At(i).Solution())
			r1, r2 := r.Float64(), r.Float64()

			nv := make([]float64, len(x))
			for j := range nv {
				nv[j] = w*vel[j] + c.C1*r1*(px[j]-x[j]) + c.C2*r2*(gx[j]-x[j])
			}
			clampVelocity(nv, c.VMax)
			velocities.Set(i, E(nv))

			pop[i].MutateSolution(func(sol *E) {
				v := []float64(*sol)
				for j := range v {
					v[j] += nv[j]
				}
			})
		}
	})
	vg.Release()
	bg.Release()
	gg.Release()
	if err != nil {
		return err
	}
	return pushCurrent[E](s, pop)
}

// UpdateBests refreshes each particle's personal best and the swarm's
// global best against the just-evaluated current population. Run after
// evaluation, before the next VelocityPositionUpdate.
type UpdateBests[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

// NewUpdateBests returns an UpdateBests.
func NewUpdateBests[E individual.Encoding[E]](minimize bool) *UpdateBests[E] {
	return &UpdateBests[E]{Minimize: minimize}
}

func (*UpdateBests[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "pso.UpdateBests")
	component.Require[*BestParticles[E]](r, "pso.UpdateBests")
	component.Require[*BestParticle[E]](r, "pso.UpdateBests")
}

func (c *UpdateBests[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s, "pso.UpdateBests")
	if err != nil {
		return err
	}

	bg, err := state.BorrowMut[*BestParticles[E]](s)
	if err != nil {
		return err
	}
	defer bg.Release()
	bests := *bg.Get()

	gg, err := state.BorrowMut[*BestParticle[E]](s)
	if err != nil {
		return err
	}
	defer gg.Release()
	global := *gg.Get()

	for i := range pop {
		if outranks[E](pop[i], bests.At(i), c.Minimize) {
			bests.Set(i, pop[i].Clone())
		}
		if cur, ok := global.Get(); !ok || outranks[E](bests.At(i), cur, c.Minimize) {
			global.Set(bests.At(i).Clone())
		}
	}
	return nil
}
