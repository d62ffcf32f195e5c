package rng

import "math/rand"

// Random is the single registry-resident RNG every stochastic component
// must draw from. It is not safe for concurrent use by multiple
// goroutines, matching math/rand.Rand itself — which is exactly why
// spec.md §5 confines it to the single-threaded run loop and requires
// parallel evaluators to carry their own derived sub-generators instead.
type Random struct {
	r *rand.Rand
}

// New returns a Random seeded deterministically from seed. The same seed
// always produces the same sequence on a given platform.
func New(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (rn *Random) Float64() float64 { return rn.r.Float64() }

// Intn returns a pseudo-random number in [0, n). Panics if n <= 0.
func (rn *Random) Intn(n int) int { return rn.r.Intn(n) }

// NormFloat64 returns a normally distributed float64 with mean 0,
// standard deviation 1, used by Gaussian mutation step sizes.
func (rn *Random) NormFloat64() float64 { return rn.r.NormFloat64() }

// Shuffle pseudo-randomizes the order of n elements via swap(i, j),
// matching the signature and Fisher-Yates semantics of rand.Rand.Shuffle.
func (rn *Random) Shuffle(n int, swap func(i, j int)) { rn.r.Shuffle(n, swap) }

// Perm returns a pseudo-random permutation of [0, n).
func (rn *Random) Perm(n int) []int { return rn.r.Perm(n) }

// Derive mixes this generator's state with stream into a new, independent
// Random, for per-worker or per-restart sub-streams that must not be
// shared with the caller's own draws (spec.md §5: "parallel evaluators
// may not draw from it unless they carry derived sub-generators with
// explicit seeds").
func (rn *Random) Derive(stream uint64) *Random {
	parent := rn.r.Int63()
	return New(splitMix64(parent, stream))
}

// splitMix64 mixes parent and stream into a new seed with strong bit
// diffusion, so nearby (parent, stream) pairs do not produce correlated
// sequences.
func splitMix64(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
