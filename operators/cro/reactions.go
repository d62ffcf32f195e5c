package cro

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// OnWallCollision draws one reactant at random and perturbs it into one
// product (1->1). If the reactant's total energy (objective + kinetic)
// is at least the product's objective, the reactant is replaced by the
// product: the energy surplus splits between EnergyBuffer and the
// molecule's new kinetic energy by a draw from [LossRateMin, 1);
// otherwise the reactant survives unchanged and its molecule's hit
// counter increments.
type OnWallCollision[E RealEncoding[E]] struct {
	component.Base[E]
	Sigma       float64
	LossRateMin float64
}

// NewOnWallCollision returns an OnWallCollision. sigma must be positive;
// lossRateMin must lie in [0, 1).
func NewOnWallCollision[E RealEncoding[E]](sigma, lossRateMin float64) (*OnWallCollision[E], error) {
	if sigma <= 0 {
		return nil, parameterf("sigma must be positive, got %v", sigma)
	}
	if lossRateMin < 0 || lossRateMin >= 1 {
		return nil, parameterf("lossRateMin must lie in [0, 1), got %v", lossRateMin)
	}
	return &OnWallCollision[E]{Sigma: sigma, LossRateMin: lossRateMin}, nil
}

func (*OnWallCollision[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReactionInputs[E](r, "cro.OnWallCollision")
}

func (c *OnWallCollision[E]) Execute(p problem.Interface[E], s *state.State) error {
	pop, err := popCurrent[E](s, "cro.OnWallCollision")
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		if pushErr := pushCurrent[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("cro.OnWallCollision", "population must be non-empty")
	}

	mg, err := state.BorrowMut[*Molecules[E]](s)
	if err != nil {
		return err
	}
	defer mg.Release()
	mols := *mg.Get()

	bg, err := state.BorrowMut[*EnergyBuffer](s)
	if err != nil {
		return err
	}
	defer bg.Release()
	buffer := *bg.Get()

	err = withRandom(s, func(r *rng.Random) error {
		i := r.Intn(len(pop))
		mol := mols.At(i)

		fr, err := energyOf0(pop[i])
		if err != nil {
			return err
		}
		er := fr + mol.KineticEnergy

		productSol := E(perturb(r, []float64(pop[i].Solution()), c.Sigma))
		objP, err := p.Evaluate(productSol)
		if err != nil {
			return err
		}
		ep, err := energyOf(objP)
		if err != nil {
			return err
		}

		if er >= ep {
			alpha := c.LossRateMin + r.Float64()*(1-c.LossRateMin)
			buffer.Value += (er - ep) * (1 - alpha)
			mol.KineticEnergy = (er - ep) * alpha
			product := individual.NewEvaluated[E](productSol, objP)
			mol.updateBest(product)
			pop[i] = product
		} else {
			mol.NumHit++
		}
		return nil
	})
	if err != nil {
		return err
	}
	return pushCurrent[E](s, pop)
}

// Decomposition draws one reactant at random and perturbs it into two
// products (1->2). If the reactant's total energy is at least the sum
// of both products' objectives, it decomposes: the surplus splits by a
// uniform draw into two kinetic energies, the reactant is replaced by
// the first product and the second product is appended as a new
// molecule. Otherwise a secondary draw against EnergyBuffer is tried; if
// that also fails to cover the deficit, only the molecule's hit counter
// increments and the population is left untouched.
type Decomposition[E RealEncoding[E]] struct {
	component.Base[E]
	Sigma float64
}

// NewDecomposition returns a Decomposition. sigma must be positive.
func NewDecomposition[E RealEncoding[E]](sigma float64) (*Decomposition[E], error) {
	if sigma <= 0 {
		return nil, parameterf("sigma must be positive, got %v", sigma)
	}
	return &Decomposition[E]{Sigma: sigma}, nil
}

func (*Decomposition[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReactionInputs[E](r, "cro.Decomposition")
}

func (c *Decomposition[E]) Execute(p problem.Interface[E], s *state.State) error {
	pop, err := popCurrent[E](s, "cro.Decomposition")
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		if pushErr := pushCurrent[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("cro.Decomposition", "population must be non-empty")
	}

	mg, err := state.BorrowMut[*Molecules[E]](s)
	if err != nil {
		return err
	}
	defer mg.Release()
	mols := *mg.Get()

	bg, err := state.BorrowMut[*EnergyBuffer](s)
	if err != nil {
		return err
	}
	defer bg.Release()
	buffer := *bg.Get()

	err = withRandom(s, func(r *rng.Random) error {
		i := r.Intn(len(pop))
		mol := mols.At(i)

		fr, err := energyOf0(pop[i])
		if err != nil {
			return err
		}
		er := fr + mol.KineticEnergy

		x := []float64(pop[i].Solution())
		sol1 := E(perturb(r, x, c.Sigma))
		sol2 := E(perturb(r, x, c.Sigma))
		obj1, err := p.Evaluate(sol1)
		if err != nil {
			return err
		}
		obj2, err := p.Evaluate(sol2)
		if err != nil {
			return err
		}
		ep1, err := energyOf(obj1)
		if err != nil {
			return err
		}
		ep2, err := energyOf(obj2)
		if err != nil {
			return err
		}

		decompositionEnergy := er - ep1 - ep2
		if decompositionEnergy < 0 {
			d1, d2 := r.Float64(), r.Float64()
			decompositionEnergy = er + d1*d2*buffer.Value - ep1 - ep2
			if decompositionEnergy < 0 {
				mol.NumHit++
				return nil
			}
			buffer.Value -= d1 * d2 * buffer.Value
		}

		d3 := r.Float64()
		ke1 := d3 * decompositionEnergy
		ke2 := (1 - d3) * decompositionEnergy

		p1 := individual.NewEvaluated[E](sol1, obj1)
		p2 := individual.NewEvaluated[E](sol2, obj2)
		mol.KineticEnergy = ke1
		mol.updateBest(p1)
		pop[i] = p1
		pop = append(pop, p2)
		mols.Append(NewMolecule[E](ke2, mol.MinHit, p2.Clone()))
		return nil
	})
	if err != nil {
		return err
	}
	return pushCurrent[E](s, pop)
}

// IntermolecularCollision draws two distinct reactants at random and
// perturbs each into its own product (2->2). If the reactants' combined
// total energy is at least the sum of both products' objectives, both
// are replaced: the surplus splits by a uniform draw into the two new
// kinetic energies. Otherwise both molecules' hit counters increment and
// the population is left untouched.
type IntermolecularCollision[E RealEncoding[E]] struct {
	component.Base[E]
	Sigma float64
}

// NewIntermolecularCollision returns an IntermolecularCollision. sigma
// must be positive.
func NewIntermolecularCollision[E RealEncoding[E]](sigma float64) (*IntermolecularCollision[E], error) {
	if sigma <= 0 {
		return nil, parameterf("sigma must be positive, got %v", sigma)
	}
	return &IntermolecularCollision[E]{Sigma: sigma}, nil
}

func (*IntermolecularCollision[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReactionInputs[E](r, "cro.IntermolecularCollision")
}

func (c *IntermolecularCollision[E]) Execute(p problem.Interface[E], s *state.State) error {
	pop, err := popCurrent[E](s, "cro.IntermolecularCollision")
	if err != nil {
		return err
	}
	if len(pop) < 2 {
		if pushErr := pushCurrent[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("cro.IntermolecularCollision", "population must hold at least 2 individuals, has %d", len(pop))
	}

	mg, err := state.BorrowMut[*Molecules[E]](s)
	if err != nil {
		return err
	}
	defer mg.Release()
	mols := *mg.Get()

	err = withRandom(s, func(r *rng.Random) error {
		i, j := distinctPair(r, len(pop))
		mi, mj := mols.At(i), mols.At(j)

		fr1, err := energyOf0(pop[i])
		if err != nil {
			return err
		}
		fr2, err := energyOf0(pop[j])
		if err != nil {
			return err
		}
		er1 := fr1 + mi.KineticEnergy
		er2 := fr2 + mj.KineticEnergy

		sol1 := E(perturb(r, []float64(pop[i].Solution()), c.Sigma))
		sol2 := E(perturb(r, []float64(pop[j].Solution()), c.Sigma))
		obj1, err := p.Evaluate(sol1)
		if err != nil {
			return err
		}
		obj2, err := p.Evaluate(sol2)
		if err != nil {
			return err
		}
		ep1, err := energyOf(obj1)
		if err != nil {
			return err
		}
		ep2, err := energyOf(obj2)
		if err != nil {
			return err
		}

		if er1+er2 < ep1+ep2 {
			mi.NumHit++
			mj.NumHit++
			return nil
		}

		surplus := er1 + er2 - ep1 - ep2
		d4 := r.Float64()
		p1 := individual.NewEvaluated[E](sol1, obj1)
		p2 := individual.NewEvaluated[E](sol2, obj2)
		mi.KineticEnergy = d4 * surplus
		mj.KineticEnergy = (1 - d4) * surplus
		mi.updateBest(p1)
		mj.updateBest(p2)
		pop[i] = p1
		pop[j] = p2
		return nil
	})
	if err != nil {
		return err
	}
	return pushCurrent[E](s, pop)
}

// Synthesis draws two distinct reactants at random and combines them
// (alpha-blended, alpha uniform) into one product (2->1). If the
// reactants' combined total energy is at least the product's objective,
// one reactant is replaced by the product (receiving all surplus energy
// as kinetic energy) and the other is removed, along with its molecule —
// shrinking the population and molecule count by one. Otherwise both
// molecules' hit counters increment and the population is left
// untouched.
type Synthesis[E RealEncoding[E]] struct {
	component.Base[E]
}

// NewSynthesis returns a Synthesis.
func NewSynthesis[E RealEncoding[E]]() *Synthesis[E] { return &Synthesis[E]{} }

func (*Synthesis[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireReactionInputs[E](r, "cro.Synthesis")
}

func (c *Synthesis[E]) Execute(p problem.Interface[E], s *state.State) error {
	pop, err := popCurrent[E](s, "cro.Synthesis")
	if err != nil {
		return err
	}
	if len(pop) < 2 {
		if pushErr := pushCurrent[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("cro.Synthesis", "population must hold at least 2 individuals, has %d", len(pop))
	}

	mg, err := state.BorrowMut[*Molecules[E]](s)
	if err != nil {
		return err
	}
	defer mg.Release()
	mols := *mg.Get()

	err = withRandom(s, func(r *rng.Random) error {
		i, j := distinctPair(r, len(pop))
		mi, mj := mols.At(i), mols.At(j)

		fr1, err := energyOf0(pop[i])
		if err != nil {
			return err
		}
		fr2, err := energyOf0(pop[j])
		if err != nil {
			return err
		}
		er1 := fr1 + mi.KineticEnergy
		er2 := fr2 + mj.KineticEnergy

		alpha := r.Float64()
		sol := E(blend([]float64(pop[i].Solution()), []float64(pop[j].Solution()), alpha))
		obj, err := p.Evaluate(sol)
		if err != nil {
			return err
		}
		ep, err := energyOf(obj)
		if err != nil {
			return err
		}

		if er1+er2 < ep {
			mi.NumHit++
			mj.NumHit++
			return nil
		}

		product := individual.NewEvaluated[E](sol, obj)
		mi.KineticEnergy = er1 + er2 - ep
		mi.updateBest(product)
		pop[i] = product

		pop = append(pop[:j], pop[j+1:]...)
		mols.RemoveAt(j)
		return nil
	})
	if err != nil {
		return err
	}
	return pushCurrent[E](s, pop)
}

func energyOf0[E individual.Encoding[E]](ind individual.Individual[E]) (float64, error) {
	obj, ok := ind.Objective()
	if !ok {
		return 0, parameterf("reactant is unevaluated")
	}
	return energyOf(obj)
}
