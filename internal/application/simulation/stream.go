package simulation

import (
	"math/rand/v2"
	"time"
)

// Stream IDs keep the two options on independent PCG sequences derived from
// the same run seed.
const (
	streamOptionA uint64 = 0xA
	streamOptionB uint64 = 0xB
)

// seedFunc devuelve una semilla pseudo-aleatoria cuando la config no fija una.
// Se puede sobreescribir en tests para runs deterministas.
var seedFunc = func() uint64 { return uint64(time.Now().UnixNano()) }

// NewStream creates a seeded random stream. The same (seed, stream) pair always
// yields the same sequence; different stream IDs never share state.
func NewStream(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// resolveSeed returns seed, or a clock-derived one when seed is 0.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	s := seedFunc()
	if s == 0 {
		s = 1
	}
	return s
}
