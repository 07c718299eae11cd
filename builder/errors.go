// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).
//   • Errors coming from network.Builder (duplicates, malformed tables) are
//     wrapped as-is, so network sentinels stay matchable too.

package builder

import "errors"

// ErrTooFewVariables indicates a size parameter below the constructor minimum.
// Typical origins: Chain(n<1), RandomDAG(n<1).
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
// Typical origins: Chain(prior/pTrue/pFalse), RandomDAG(p).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an option combination
// that cannot produce a valid network.
var ErrConstructFailed = errors.New("builder: construction failed")
