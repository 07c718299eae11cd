// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates a network.Builder,
//     resolves cfg, runs cons in order, then calls Build.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors to assemble larger fixtures; names must not collide
//     (use WithSymbNumb to give synthetic parts their own prefix).
//   - Use WithSeed(...) to freeze RandomDAG.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

// Constructor declares variables into b using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors (no
// panics), and stay deterministic for the same config and call order.
type Constructor func(b *network.Builder, cfg builderConfig) error

// BuildNetwork resolves the builder configuration from bopts, applies all
// constructors in order and builds the network. Any error is wrapped with
// "BuildNetwork: %w"; no partial network is returned.
//
// Errors:
//   - builder sentinels (ErrTooFewVariables, ErrInvalidProbability, ...)
//   - network sentinels from declaration or Build (ErrDuplicateVariable, ...)
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	nb := network.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nb, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	net, err := nb.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return net, nil
}

// Method tags for error context.
const (
	MethodAlarm     = "Alarm"
	MethodEx2       = "Ex2"
	MethodSprinkler = "Sprinkler"
	MethodChain     = "Chain"
	MethodRandomDAG = "RandomDAG"
)
