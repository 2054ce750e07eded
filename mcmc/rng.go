// SPDX-License-Identifier: MIT

package mcmc

import "golang.org/x/exp/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed uint64 = 1

// NewSource returns a deterministic PCG source.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(seed)
}

// DeriveSource returns an independent deterministic stream for (seed, stream).
// Distinct stream ids under one seed give decorrelated sources; the same pair
// always gives the same source.
func DeriveSource(seed, stream uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(deriveSeed(seed, stream))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
