// Package randutil seeds the engine's random sources. A table's shoe and
// every simulation worker derive their generator from a single int64, so a
// session or a whole run replays exactly from its seed.
package randutil

import rand "math/rand/v2"

// goldenRatio64 offsets the second PCG seed word so the two words never
// coincide, whatever the caller's seed.
const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded from one int64. rand/v2's PCG takes two
// 64-bit words; both are run through a splitmix-style finalizer so adjacent
// seeds, as handed to consecutive simulation workers, still yield unrelated
// shuffle streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finalizer. It scrambles low-entropy inputs, small
// integers and near-duplicates, into well-distributed words.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
