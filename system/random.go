package system

// Random is the uniform [0,1) source used for windup sampling
// *math/rand.Rand satisfies it
type Random interface {
	Float64() float64
}

// FixedRandom always returns the same sample, for deterministic tests and replays
type FixedRandom float64

func (r FixedRandom) Float64() float64 {
	return float64(r)
}
