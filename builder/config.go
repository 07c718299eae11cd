// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn   = ExcelColumnIDFn   ("A","B",...,"Z","AA",...)
//   • rng    = nil               (pure/deterministic unless seeded)
//   • probFn = DefaultProbFn     (constant 0.5 without an RNG)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomDAG fixtures.
//   • Canonical networks (Alarm, Ex2, Sprinkler) ignore idFn and probFn.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Variable name strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Generator for conditional table entries of synthetic networks.
	probFn ProbFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   ExcelColumnIDFn,
		rng:    nil,
		probFn: DefaultProbFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
