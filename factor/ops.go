// SPDX-License-Identifier: MIT

// Package factor - join and marginalization kernels.
//
// Purpose:
//   - Pointwise: full join of two factors over the sorted union scope.
//   - SumOut: consolidate every factor mentioning a variable, then sum it away.
//   - Product: fold Pointwise over a list (used to finish elimination).
//
// Determinism:
//   - Fixed loop orders over bit-packed indices; no map iteration in kernels.
//
// AI-Hints:
//   - Pointwise dominates elimination cost: O(2^|union|) per call.
//   - SumOut keeps untouched factors in their original order and appends the
//     marginal, so repeated runs produce identical factor lists.

package factor

import (
	"fmt"
)

const (
	ctxPointwise = "Pointwise"
	ctxSumOut    = "SumOut"
	ctxProduct   = "Product"
)

// Pointwise returns the join of a and b: scope = sorted(a.scope ∪ b.scope),
// value(x) = a(x|a.scope) · b(x|b.scope).
//
// Implementation:
//   - Stage 1: merge the sorted scopes.
//   - Stage 2: for every union position, precompute the bit it maps to in a
//     and in b (0 when absent).
//   - Stage 3: walk union indices, accumulate the projected indices, multiply.
//
// Behavior highlights:
//   - Commutative and associative: scopes are canonical, so any join order
//     yields the same table.
//   - Disjoint scopes produce the outer product; scalars scale.
//
// Errors:
//   - ErrNilFactor, ErrScopeTooLarge.
//
// Complexity:
//   - Time O(2^n · n), Space O(2^n), n = |union|.
func Pointwise(a, b *Factor) (*Factor, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", ctxPointwise, ErrNilFactor)
	}
	scope := mergeScopes(a.scope, b.scope)
	if len(scope) > MaxScope {
		return nil, fmt.Errorf("%s: %d variables: %w", ctxPointwise, len(scope), ErrScopeTooLarge)
	}

	n := len(scope)
	aw := projectionWeights(scope, a)
	bw := projectionWeights(scope, b)

	out := newZero(scope)
	for idx := range out.values {
		ia, ib := 0, 0
		for i := 0; i < n; i++ {
			if idx>>(n-1-i)&1 == 1 {
				ia += aw[i]
				ib += bw[i]
			}
		}
		out.values[idx] = a.values[ia] * b.values[ib]
	}

	return out, nil
}

// SumOut eliminates name from factors.
//
// Implementation:
//   - Stage 1: partition into factors whose scope contains name and the rest.
//   - Stage 2: if none contain name, return a copy of the list unchanged.
//   - Stage 3: Pointwise-join every containing factor (join before
//     marginalizing, otherwise the sum would not distribute correctly).
//   - Stage 4: sum the name=false and name=true halves of the joined table.
//
// Returns:
//   - the untouched factors in original order, followed by the marginal.
//     A marginal with empty scope is a scalar and stays in the list.
//
// Errors:
//   - ErrNilFactor, ErrScopeTooLarge.
//
// Complexity:
//   - Time O(k · 2^n · n) for k joins into a scope of n variables.
func SumOut(name string, factors []*Factor) ([]*Factor, error) {
	var (
		with []*Factor
		rest = make([]*Factor, 0, len(factors))
	)
	for i, f := range factors {
		if f == nil {
			return nil, fmt.Errorf("%s(%s): factors[%d]: %w", ctxSumOut, name, i, ErrNilFactor)
		}
		if f.Contains(name) {
			with = append(with, f)
		} else {
			rest = append(rest, f)
		}
	}
	if len(with) == 0 {
		return rest, nil
	}

	joined := with[0]
	for _, f := range with[1:] {
		var err error
		if joined, err = Pointwise(joined, f); err != nil {
			return nil, fmt.Errorf("%s(%s): %w", ctxSumOut, name, err)
		}
	}

	return append(rest, joined.marginalize(name)), nil
}

// Product joins every factor into one; no factors yields Scalar(1).
func Product(factors ...*Factor) (*Factor, error) {
	acc := Scalar(1)
	for i, f := range factors {
		if f == nil {
			return nil, fmt.Errorf("%s: factors[%d]: %w", ctxProduct, i, ErrNilFactor)
		}
		var err error
		if acc, err = Pointwise(acc, f); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxProduct, err)
		}
	}

	return acc, nil
}

// marginalize sums name out of f; name must be in scope.
//
// With n = |scope| and pos = position(name), the bit of name is
// s = n-1-pos. A reduced index r splits into the bits above s (r >> s) and
// below s (r & (1<<s - 1)); re-inserting a 0 or 1 at s gives the two source
// entries.
func (f *Factor) marginalize(name string) *Factor {
	pos := f.position(name)
	n := len(f.scope)
	shift := n - 1 - pos
	lowMask := 1<<shift - 1

	scope := make([]string, 0, n-1)
	scope = append(scope, f.scope[:pos]...)
	scope = append(scope, f.scope[pos+1:]...)

	out := newZero(scope)
	for r := range out.values {
		base := (r>>shift)<<(shift+1) | r&lowMask
		out.values[r] = f.values[base] + f.values[base|1<<shift]
	}

	return out
}

// mergeScopes returns the sorted union of two sorted, unique scopes.
func mergeScopes(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// projectionWeights maps each union position to the bit it sets in f's index.
func projectionWeights(union []string, f *Factor) []int {
	w := make([]int, len(union))
	n := len(f.scope)
	for i, name := range union {
		if pos := f.position(name); pos >= 0 {
			w[i] = 1 << (n - 1 - pos)
		}
	}

	return w
}
