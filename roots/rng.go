// SPDX-License-Identifier: MIT

package roots

import "math/rand"

// defaultRNGSeed replaces a zero Options.Seed.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// The generator is owned by a single solve call and never shared.
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniform draws n values from [lo, hi).
func uniform(r *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = lo + (hi-lo)*r.Float64()
	}

	return out
}
