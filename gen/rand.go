package gen

import "math/rand"

// Rand is a Source backed by a seeded math/rand generator. It is used for
// corpus seeding and for reproducing a generation session outside the
// fuzzing engine: the same seed replays the same sequence of values.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Newline is a no-op: a pseudo-random source has no record boundaries to
// keep aligned.
func (g *Rand) Newline() {}

// Int64 draws one integer within [lower, upper]. A range with lower > upper
// clamps to lower, matching ByteSource.
func (g *Rand) Int64(lower, upper int64) int64 {
	return bound(g.r.Uint64(), lower, upper)
}

// Int64Array returns n integers via repeated Int64 calls. n <= 0 returns an
// empty, non-nil slice.
func (g *Rand) Int64Array(n int, lower, upper int64) []int64 {
	if n <= 0 {
		return []int64{}
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = g.Int64(lower, upper)
	}
	return out
}

// ASCII fills p with random printable bytes.
func (g *Rand) ASCII(p []byte) {
	for i := range p {
		p[i] = asciiAlphabet[g.r.Intn(len(asciiAlphabet))]
	}
}
