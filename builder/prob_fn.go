// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultProbability is the table entry used when no RNG is configured.
const DefaultProbability = 0.5

// ProbFn produces a conditional probability P(true | parents) given an
// optional *rand.Rand source. It must be deterministic for a given RNG seed
// and always return a value in [0,1].
type ProbFn func(rng *rand.Rand) float64

// DefaultProbFn draws uniformly from [0.05, 0.95); without an RNG it yields
// DefaultProbability. The open margins keep synthetic evidence from having
// zero likelihood.
func DefaultProbFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultProbability
	}

	return 0.05 + 0.9*rng.Float64()
}

// ConstantProbFn returns a ProbFn that always yields p.
// Panics if p is outside [0,1].
func ConstantProbFn(p float64) ProbFn {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("ConstantProbFn: p must be in [0,1], got %g", p))
	}

	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformProbFn returns a ProbFn sampling uniformly in [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ 1. Without an RNG it yields the midpoint.
func UniformProbFn(lo, hi float64) ProbFn {
	if !(lo >= 0 && lo <= hi && hi <= 1) {
		panic(fmt.Sprintf("UniformProbFn: require 0 ≤ lo ≤ hi ≤ 1, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return (lo + hi) / 2
		}
		return lo + (hi-lo)*rng.Float64()
	}
}
