package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/state"
)

// MutationStrength is a mutation component's deviation/bound parameter,
// published to the registry under its owning component's own Go type M
// so an external adaptation component can override the value the
// mutation actually uses without touching its constructor field.
type MutationStrength[M any] struct {
	value float64
}

// Value returns the current mutation strength.
func (m MutationStrength[M]) Value() float64 { return m.value }

// Set overrides the mutation strength in place.
func (m *MutationStrength[M]) Set(v float64) { m.value = v }

// MutationRate is a mutation component's per-coordinate application
// probability, namespaced the same way as MutationStrength.
type MutationRate[M any] struct {
	value float64
}

// Value returns the current mutation rate.
func (m MutationRate[M]) Value() float64 { return m.value }

// Set overrides the mutation rate in place.
func (m *MutationRate[M]) Set(v float64) { m.value = v }

// initMutationParams seeds MutationStrength[M]/MutationRate[M] with the
// component's constructor defaults the first time it runs. Call from
// Init so the state exists by the time any Require on it is validated.
func initMutationParams[M any](s *state.State, strength, rate float64) {
	state.EntryOf[MutationStrength[M]](s).OrInsert(MutationStrength[M]{value: strength})
	state.EntryOf[MutationRate[M]](s).OrInsert(MutationRate[M]{value: rate})
}

// mutationParams reads the live MutationStrength[M]/MutationRate[M]
// values, falling back to the constructor defaults if Init has not run
// (e.g. a component executed directly in a test without Preflight).
func mutationParams[M any](s *state.State, fallbackStrength, fallbackRate float64) (strength, rate float64) {
	return borrowParam[MutationStrength[M]](s, fallbackStrength, (*MutationStrength[M]).Value),
		borrowParam[MutationRate[M]](s, fallbackRate, (*MutationRate[M]).Value)
}

func borrowParam[T any](s *state.State, fallback float64, project func(*T) float64) float64 {
	g, err := state.Borrow[T](s)
	if err != nil {
		return fallback
	}
	defer g.Release()
	v := g.Get()
	return project(&v)
}

func requireMutationParams[M any](r *component.Requirements, owner string) {
	component.Require[MutationStrength[M]](r, owner)
	component.Require[MutationRate[M]](r, owner)
}
