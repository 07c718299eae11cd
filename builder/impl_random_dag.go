// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p, maxParents).
//
// Canonical model:
//   - Variables 0..n-1 named via cfg.idFn; index order is a topological order.
//   - For each j asc, candidate parents i < j asc are admitted independently
//     with probability p until j has maxParents parents.
//   - Roots get a prior, others a full table; every entry comes from cfg.probFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVariables).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - maxParents ≥ 0 (else ErrTooFewVariables).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials + O(n · 2^maxParents) table entries.
//
// Determinism:
//   - Fixed trial order (j asc, i asc) and table order (bit-packed asc), so a
//     fixed seed reproduces the same network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

const minRandomDAGVariables = 1

// RandomDAG returns a Constructor sampling a random Bayesian network.
func RandomDAG(n int, p float64, maxParents int) Constructor {
	return func(b *network.Builder, cfg builderConfig) error {
		if n < minRandomDAGVariables {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomDAG, n, minRandomDAGVariables, ErrTooFewVariables)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", MethodRandomDAG, p, ErrInvalidProbability)
		}
		if maxParents < 0 {
			return fmt.Errorf("%s: maxParents=%d < 0: %w", MethodRandomDAG, maxParents, ErrTooFewVariables)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomDAG, ErrNeedRandSource)
		}

		names := make([]string, n)
		for i := range names {
			names[i] = cfg.idFn(i)
		}

		for j := 0; j < n; j++ {
			var parents []string
			for i := 0; i < j && len(parents) < maxParents; i++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					parents = append(parents, names[i])
				}
			}

			if len(parents) == 0 {
				if err := b.AddPrior(names[j], cfg.probFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", MethodRandomDAG, err)
				}
				continue
			}

			rows := make([]network.Row, 1<<len(parents))
			for idx := range rows {
				rows[idx] = network.Row{
					Given: network.UnpackIndex(idx, len(parents)),
					P:     cfg.probFn(cfg.rng),
				}
			}
			if err := b.AddTable(names[j], parents, rows); err != nil {
				return fmt.Errorf("%s: %w", MethodRandomDAG, err)
			}
		}

		return nil
	}
}
