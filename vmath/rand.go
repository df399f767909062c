package vmath

// FastRand is a xorshift64 PRNG for gameplay jitter.
// Not cryptographic. Zero value is invalid, use NewFastRand.
type FastRand struct {
	state uint64
}

// NewFastRand creates a seeded generator. Seed 0 is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). Returns 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Jitter returns a value in [center-spread, center+spread)
func (r *FastRand) Jitter(center, spread float64) float64 {
	return center + (r.Float64()*2-1)*spread
}
