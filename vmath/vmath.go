package vmath

// --- Randomness ---

// FastRand is a seeded xorshift64* generator
// Same seed reproduces the same sequence, which keeps tunnels and replays deterministic
type FastRand struct {
	state uint64
}

// NewFastRand scrambles the seed through splitmix64 so small seeds do not produce a run
// of near-zero outputs
func NewFastRand(seed uint64) *FastRand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &FastRand{state: s}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 2685821657736338717
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// Uniform returns a value in [low, high), low >= high returns low without consuming state
func (r *FastRand) Uniform(low, high float64) float64 {
	if high <= low {
		return low
	}
	return low + (high-low)*r.Float64()
}

// State exposes the raw generator state for snapshots
func (r *FastRand) State() uint64 {
	return r.state
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
