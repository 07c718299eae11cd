// SPDX-License-Identifier: MIT

// Package network holds the immutable model of a discrete Bayesian network
// over binary variables, its topological ordering, and the conditional
// probability lookup shared by every inference algorithm.
//
// What:
//
//   - Builder: two-pass construction (declare, then Build resolves parents,
//     back-fills children and rejects cycles).
//   - Network: arena of Node records sorted by name with integer references.
//   - TopologicalOrder: parents-before-children, ties broken by name.
//   - QueryGiven: P(Y = e[Y] | e[parents(Y)]).
//   - Evidence: observed values keyed by variable name.
//
// Example:
//
//	b := network.NewBuilder()
//	_ = b.AddPrior("Rain", 0.2)
//	_ = b.AddTable("WetGrass", []string{"Rain"}, []network.Row{
//		{Given: []bool{true}, P: 0.9},
//		{Given: []bool{false}, P: 0.1},
//	})
//	net, err := b.Build()
//
// Errors:
//
//   - ErrMalformedNetwork and its refinements (ErrCycleDetected,
//     ErrMissingParent, ErrIncompleteTable, ErrDuplicateVariable,
//     ErrInvalidProbability) from construction.
//   - ErrMissingEvidence, ErrUnknownVariable from lookups.
//
// Concurrency: a built Network is read-only; share it freely.
package network
