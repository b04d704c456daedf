// Package montecarlo - RNG utilities for the sampler.
//
// This file centralizes random source construction.
//
// Policy:
//   - seed != 0 ⇒ deterministic stream, identical across runs.
//   - seed == 0 ⇒ clock seed; the run is not reproducible.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use deriveRNG to create an
//     independent stream per worker.
package montecarlo

import (
	"math/rand"
	"time"
)

// resolveSeed applies the zero-means-clock policy.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}

	return time.Now().UnixNano()
}

// rngFromSeed returns a *rand.Rand seeded per resolveSeed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(resolveSeed(seed)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer, so neighboring stream ids yield
// unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates the stream for worker `stream` from a resolved parent seed.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
