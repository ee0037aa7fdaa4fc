package systems

// Source supplies uniform random values in [0, 1).
// *rand.Rand satisfies it; tests substitute a scripted source.
type Source interface {
	Float64() float64
}
