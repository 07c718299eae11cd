// SPDX-License-Identifier: MIT

// Package inference answers conditional queries P(X | e) on a
// network.Network with two exact algorithms.
//
// What:
//
//   - EnumerationAsk: sums the full joint distribution over every hidden
//     variable, walking the network in topological order.
//   - EliminationAsk: variable elimination. Variables are processed from
//     the leaves up; each contributes the factor of its table, and hidden
//     variables are summed out as soon as all their children are done.
//   - Ask: dispatch on an Algorithm name ("enum", "elim").
//   - Normalize: scale a pair of likelihoods to sum to 1.
//
// Both engines return the same Distribution (up to floating-point rounding)
// for every valid query.
//
// Options:
//
//   - WithContext(ctx)       cancellation between steps.
//   - WithLogger(l)          Debug records per step (default: discarded).
//   - WithHeuristic(h)       elimination order: ParentCount (default), MinScope.
//   - WithOnEliminate(fn)    hook invoked for each eliminated variable.
//
// Observed query variables:
//
//	If X appears in e, the answer is a point mass on the observed value,
//	or ErrDegenerateDistribution if that value is impossible given the
//	rest of e. Both engines behave identically.
//
// Complexity:
//
//   - EnumerationAsk: Time O(n · 2^h), h = hidden variables; Space O(n).
//   - EliminationAsk: Time O(n² + n · 2^w), w = widest factor; Space O(2^w).
//
// Errors:
//
//   - ErrNilNetwork               net is nil
//   - network.ErrUnknownVariable  X or an evidence key is not in net
//   - ErrDegenerateDistribution   evidence has probability zero
//   - ErrScopeMismatch            elimination ended on a factor not over [X]
//   - ErrUnknownAlgorithm         Ask/ParseAlgorithm with a bad name
//   - ErrUnknownHeuristic         ParseHeuristic with a bad name
package inference
