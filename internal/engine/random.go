package engine

import (
	crand "crypto/rand"
	mathrand "math/rand"
	"time"
)

// InitRNG initializes the RNG. In deterministic mode (seeded=true) uses *seedOpt.
// In random mode, generates a seed (crypto/rand or time) and writes it to *seedOpt
// so every run can be reproduced with -seed.
func InitRNG(seedOpt *int64, seeded bool) *mathrand.Rand {
	if seeded && seedOpt != nil {
		return mathrand.New(mathrand.NewSource(*seedOpt))
	}
	var seed int64
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		for i := 0; i < 8; i++ {
			seed = (seed << 8) | int64(b[i])
		}
	} else {
		seed = time.Now().UnixNano()
	}
	if seedOpt != nil {
		*seedOpt = seed
	}
	return mathrand.New(mathrand.NewSource(seed))
}

// shuffleCopy returns a permutation of s produced by `passes` full
// Fisher-Yates passes. One pass already yields a uniform permutation; the
// extra passes are kept as a behavioral contract (intensity levels re-run
// the shuffle rather than strengthening it). The input slice is never
// mutated. 0 or 1 elements come back as-is.
func shuffleCopy[T any](r *mathrand.Rand, s []T, passes int) []T {
	out := make([]T, len(s))
	copy(out, s)
	if len(out) < 2 {
		return out
	}
	if passes < 1 {
		passes = 1
	}
	for p := 0; p < passes; p++ {
		for i := len(out) - 1; i > 0; i-- {
			j := r.Intn(i + 1)
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
