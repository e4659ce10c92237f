package feed

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of uniform draws in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed Rand. A zero seed picks one from the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
