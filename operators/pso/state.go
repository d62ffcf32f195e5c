package pso

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
)

// RealEncoding is satisfied by any encoding backed by a []float64 — the
// only kind of solution a particle swarm's velocity vector can meaningfully
// pair with.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// Velocities holds one velocity vector per particle, index-aligned with
// the current population.
type Velocities[E RealEncoding[E]] struct {
	vecs []E
}

// NewVelocities wraps vecs as registry-resident particle velocities.
func NewVelocities[E RealEncoding[E]](vecs []E) *Velocities[E] {
	return &Velocities[E]{vecs: vecs}
}

// Len returns the number of particles.
func (v *Velocities[E]) Len() int { return len(v.vecs) }

// At returns the velocity vector of particle i.
func (v *Velocities[E]) At(i int) E { return v.vecs[i] }

// Set replaces the velocity vector of particle i.
func (v *Velocities[E]) Set(i int, vec E) { v.vecs[i] = vec }

// RemoveAt deletes the velocity vector at i, shifting later entries down.
func (v *Velocities[E]) RemoveAt(i int) {
	v.vecs = append(v.vecs[:i], v.vecs[i+1:]...)
}

// Append adds a velocity vector for a newly inserted particle.
func (v *Velocities[E]) Append(vec E) { v.vecs = append(v.vecs, vec) }

// BestParticles holds each particle's personal-best individual,
// index-aligned with the current population.
type BestParticles[E individual.Encoding[E]] struct {
	bests population.Population[E]
}

// NewBestParticles wraps bests as registry-resident personal bests.
func NewBestParticles[E individual.Encoding[E]](bests population.Population[E]) *BestParticles[E] {
	return &BestParticles[E]{bests: bests}
}

// Len returns the number of tracked personal bests.
func (b *BestParticles[E]) Len() int { return len(b.bests) }

// At returns the personal best of particle i.
func (b *BestParticles[E]) At(i int) individual.Individual[E] { return b.bests[i] }

// Set replaces the personal best of particle i.
func (b *BestParticles[E]) Set(i int, ind individual.Individual[E]) { b.bests[i] = ind }

// RemoveAt deletes the personal best at i, shifting later entries down.
func (b *BestParticles[E]) RemoveAt(i int) {
	b.bests = append(b.bests[:i], b.bests[i+1:]...)
}

// Append adds a personal best for a newly inserted particle.
func (b *BestParticles[E]) Append(ind individual.Individual[E]) {
	b.bests = append(b.bests, ind)
}

// BestParticle holds the swarm's global-best individual, absent until
// the first evaluated population is seen.
type BestParticle[E individual.Encoding[E]] struct {
	best individual.Individual[E]
	set  bool
}

// Get returns the global best and whether one has been recorded yet.
func (g *BestParticle[E]) Get() (individual.Individual[E], bool) { return g.best, g.set }

// Set records ind as the new global best.
func (g *BestParticle[E]) Set(ind individual.Individual[E]) {
	g.best = ind
	g.set = true
}

// InertiaWeight is the registry-resident w parameter VelocityPositionUpdate
// reads every iteration, so it can be annealed by another component
// between iterations without reconstructing the update component.
type InertiaWeight struct {
	W float64
}
