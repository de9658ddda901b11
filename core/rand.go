package core

// Rand is the subset of *rand.Rand (math/rand/v2) the simulation draws from
type Rand interface {
	IntN(n int) int
}

// IntRange returns a uniform value in [lo, hi]
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
