// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// impl_chain.go - implementation of Chain(n, prior, pTrue, pFalse).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVariables).
//   - prior, pTrue, pFalse ∈ [0,1] (else ErrInvalidProbability).
//   - Names via cfg.idFn in index order: X0 → X1 → … → X(n-1).
//   - X0 has P(true)=prior; every Xi (i≥1) has
//     P(Xi=true | Xi-1=true)=pTrue, P(Xi=true | Xi-1=false)=pFalse.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

const minChainVariables = 1

// Chain returns a Constructor for a Markov chain of n binary variables.
func Chain(n int, prior, pTrue, pFalse float64) Constructor {
	return func(b *network.Builder, cfg builderConfig) error {
		if n < minChainVariables {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, minChainVariables, ErrTooFewVariables)
		}
		for _, p := range []float64{prior, pTrue, pFalse} {
			if !(p >= 0 && p <= 1) {
				return fmt.Errorf("%s: p=%g not in [0,1]: %w", MethodChain, p, ErrInvalidProbability)
			}
		}

		prev := cfg.idFn(0)
		if err := b.AddPrior(prev, prior); err != nil {
			return fmt.Errorf("%s: %w", MethodChain, err)
		}
		for i := 1; i < n; i++ {
			name := cfg.idFn(i)
			err := b.AddTable(name, []string{prev}, []network.Row{
				row(pTrue, true),
				row(pFalse, false),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", MethodChain, err)
			}
			prev = name
		}

		return nil
	}
}
