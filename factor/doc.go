// SPDX-License-Identifier: MIT

// Package factor implements the factor algebra behind variable elimination:
// dense tables over sorted scopes of binary variables, built from a
// network's conditional tables, joined pointwise and marginalized.
//
// Representation:
//
//	scope  = [A C E]            (ascending, unique)
//	values = [v0 v1 ... v7]     (len 2^|scope|)
//	index  = A<<2 | C<<1 | E    (false=0, true=1)
//
// Operations:
//
//   - Make(net, name, e)   : factor of name's table restricted by evidence e.
//   - ScopeOf(net, name, e): the scope Make would produce.
//   - Pointwise(a, b)      : join over the union scope.
//   - SumOut(name, fs)     : join all factors over name, then sum name away.
//   - Product(fs...)       : join everything into one factor.
//   - Assignments(n)       : memoized table of all boolean n-tuples.
//
// Complexity:
//
//   - Make:      O(2^p · p), p = |parents|+1
//   - Pointwise: O(2^n · n), n = |union scope|
//   - SumOut:    O(k · 2^n · n)
//
// Errors:
//
//   - ErrNilFactor, ErrBadScope, ErrSizeMismatch, ErrBadValue,
//     ErrOutOfRange, ErrScopeTooLarge
//   - network.ErrUnknownVariable / network.ErrMissingEvidence from lookups
//
// Concurrency: factors are immutable values; the Assignments cache is safe
// for concurrent use.
package factor
