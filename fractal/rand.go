package fractal

import "math/rand"

// Rand is the randomness the drawers consume. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fixed is a Rand that replays Values in order (wrapping) for Float64 and
// always returns N modulo n for Intn.
type Fixed struct {
	Values []float64
	N      int

	i int
}

func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.i%len(f.Values)]
	f.i++
	return v
}

func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := f.N % n
	if v < 0 {
		v += n
	}
	return v
}
