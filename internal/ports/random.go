package ports

// RandomSource is the random stream one outcome sample is drawn from.
// *rand.Rand from math/rand/v2 satisfies it.
//
// A RandomSource is not safe for concurrent use: each sample gets its own.
type RandomSource interface {
	// NormFloat64 returns a standard normal draw (mean 0, std dev 1).
	NormFloat64() float64
}
