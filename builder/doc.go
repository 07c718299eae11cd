// SPDX-License-Identifier: MIT

// Package builder provides reusable functional-options building blocks for
// Bayesian network fixtures: textbook networks with known answers and
// seeded synthetic networks for cross-checking inference algorithms.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildNetwork(bopts, cons...): apply constructors, then network.Builder.Build.
//   - Canonical constructors (fixed names/tables):
//     – Alarm():     B,E → A → J,M.
//     – Ex2():       A → C → E, {A,B} → D.
//     – Sprinkler(): Cloudy → {Sprinkler, Rain} → WetGrass.
//   - Synthetic constructors:
//     – Chain(n, prior, pTrue, pFalse): X0 → X1 → … → X(n-1).
//     – RandomDAG(n, p, maxParents):    seeded random DAG with random tables.
//   - Configuration primitives:
//     – BuilderOption: WithIDScheme, WithSymbNumb, WithSeed, WithRand, WithProbFn.
//     – IDFn:          ExcelColumnIDFn, SymbolNumberIDFn.
//     – ProbFn:        DefaultProbFn, ConstantProbFn, UniformProbFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVariables, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//   - Same options, seed and constructor order ⇒ identical network.
package builder
