// Package facts holds the fixed pool of cosmic fun facts shown alongside
// results. Picking one is the only randomness in the application; the dose
// path stays fully deterministic.
package facts

import "math/rand"

var cosmicFacts = []string{
	"Did you know? The ISS crew receives 80–160 mSv per 6-month mission.",
	"Cosmic rays can flip bits in satellites — Single Event Upsets (SEUs).",
	"Airline pilots get ~3 mSv/year due to high-altitude exposure.",
	"Mars has no magnetic shield → cosmic rays freely hit its surface.",
	"Solar storms can disrupt power grids & satellites on Earth!",
}

// All returns a copy of the fact pool.
func All() []string {
	out := make([]string, len(cosmicFacts))
	copy(out, cosmicFacts)
	return out
}

// Pick returns one fact chosen by rng.
func Pick(rng *rand.Rand) string {
	return cosmicFacts[rng.Intn(len(cosmicFacts))]
}
