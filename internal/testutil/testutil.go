// Package testutil provides small fixtures shared by the test suites of
// the component, evaluator, operators, and termination packages: a real
// vector encoding and a couple of classic benchmark problems. It is not a
// benchmark-problem library in its own right (spec.md §1 keeps those out
// of scope) — just enough to exercise the core against something real.
package testutil

import (
	"math"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/problem"
)

// Vec is a real-valued vector solution encoding.
type Vec []float64

// Clone implements individual.Encoding[Vec].
func (v Vec) Clone() Vec {
	cp := make(Vec, len(v))
	copy(cp, v)
	return cp
}

// VecEqual compares two Vec encodings coordinate-wise.
func VecEqual(a, b Vec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Sphere is the classic sum-of-squares minimization benchmark, f(x) =
// sum(x_i^2), optimum 0 at the origin.
type Sphere struct {
	Dim int
	Lo  float64
	Hi  float64
}

// NewSphere returns a Sphere problem of the given dimension over
// [-bound, bound]^dim.
func NewSphere(dim int, bound float64) *Sphere {
	return &Sphere{Dim: dim, Lo: -bound, Hi: bound}
}

func (s *Sphere) Name() string { return "Sphere" }

func (s *Sphere) Evaluate(x Vec) (objective.Value, error) {
	sum := 0.0
	for _, xi := range x {
		sum += xi * xi
	}
	return objective.NewSingle(sum)
}

func (s *Sphere) Dimension() int { return s.Dim }

func (s *Sphere) Domain() []problem.Range {
	d := make([]problem.Range, s.Dim)
	for i := range d {
		d[i] = problem.Range{Min: s.Lo, Max: s.Hi}
	}
	return d
}

func (s *Sphere) KnownOptimum() (objective.Value, bool) {
	v, _ := objective.NewSingle(0)
	return v, true
}

func (s *Sphere) TargetHit(v objective.Value) bool {
	sv, ok := v.(objective.Single)
	return ok && sv.Value() <= 1e-6
}

// Rastrigin is a classic multimodal minimization benchmark.
type Rastrigin struct {
	Dim int
	Lo  float64
	Hi  float64
}

func NewRastrigin(dim int, bound float64) *Rastrigin {
	return &Rastrigin{Dim: dim, Lo: -bound, Hi: bound}
}

func (r *Rastrigin) Name() string { return "Rastrigin" }

func (r *Rastrigin) Evaluate(x Vec) (objective.Value, error) {
	const a = 10.0
	sum := a * float64(len(x))
	for _, xi := range x {
		sum += xi*xi - a*math.Cos(2*math.Pi*xi)
	}
	return objective.NewSingle(sum)
}

func (r *Rastrigin) Dimension() int { return r.Dim }

func (r *Rastrigin) Domain() []problem.Range {
	d := make([]problem.Range, r.Dim)
	for i := range d {
		d[i] = problem.Range{Min: r.Lo, Max: r.Hi}
	}
	return d
}

// Bits is a fixed-length bit-string encoding.
type Bits []bool

func (b Bits) Clone() Bits {
	cp := make(Bits, len(b))
	copy(cp, b)
	return cp
}

// Perm is a permutation encoding (for permutation-based operators:
// inversion/swap/scramble mutation, cycle crossover).
type Perm []int

func (p Perm) Clone() Perm {
	cp := make(Perm, len(p))
	copy(cp, p)
	return cp
}

// Zero is a problem over any encoding whose objective is always 0, for
// tests of the bit-string and permutation operators, which Sphere and
// Rastrigin (problems over Vec) cannot be passed to.
type Zero[E individual.Encoding[E]] struct{}

func (Zero[E]) Name() string { return "Zero" }

func (Zero[E]) Evaluate(E) (objective.Value, error) { return objective.NewSingle(0) }

func PermEqual(a, b Perm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
