// SPDX-License-Identifier: MIT

// Package factor - dense factor storage & safe accessors.
//
// Purpose:
//   - Store a non-negative real function over a set of binary variables as a
//     flat []float64 of length 2^|scope|.
//   - Keep the scope in canonical ascending order so two factors over the same
//     variables always share one layout.
//   - Index formula: the assignment (v0..vn-1) over scope lives at
//     Σ b(vi) << (n-1-i), b(false)=0, b(true)=1 (scope[0] is the most
//     significant bit), identical to network.PackIndex.
//
// Complexity quicksheet:
//   - New: O(2^n) validation; At: O(1); Value: O(n); Lookup: O(n); Clone: O(2^n).

package factor

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/bayesnet/network"
)

// MaxScope bounds the number of variables of any factor this package builds.
const MaxScope = 30

// method tags used in error wrappers
const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxValue  = "Value"
	ctxLookup = "Lookup"
)

// Factor is an immutable dense table over a sorted scope of binary variables.
type Factor struct {
	scope  []string  // ascending, unique
	values []float64 // len == 1<<len(scope)
}

var _ fmt.Stringer = (*Factor)(nil)

// New creates a factor after validating the scope and table.
//
// Implementation:
//   - Stage 1: scope strictly ascending, non-empty names, |scope| <= MaxScope.
//   - Stage 2: len(values) == 2^|scope|.
//   - Stage 3: every value finite and >= 0.
//   - Stage 4: copy inputs so the caller keeps ownership of its slices.
//
// Errors:
//   - ErrBadScope, ErrScopeTooLarge, ErrSizeMismatch, ErrBadValue.
//
// Complexity:
//   - Time O(2^n + n), Space O(2^n + n).
func New(scope []string, values []float64) (*Factor, error) {
	if err := checkScope(scope); err != nil {
		return nil, fmt.Errorf("%s(%v): %w", ctxNew, scope, err)
	}
	if want := 1 << len(scope); len(values) != want {
		return nil, fmt.Errorf("%s(%v): len=%d, want %d: %w", ctxNew, scope, len(values), want, ErrSizeMismatch)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%s(%v): values[%d]=%v: %w", ctxNew, scope, i, v, ErrBadValue)
		}
	}

	return &Factor{
		scope:  append([]string(nil), scope...),
		values: append([]float64(nil), values...),
	}, nil
}

// Scalar returns the empty-scope factor holding v.
func Scalar(v float64) *Factor {
	return &Factor{scope: nil, values: []float64{v}}
}

// newZero allocates a zero table over an already validated scope.
func newZero(scope []string) *Factor {
	return &Factor{scope: scope, values: make([]float64, 1<<len(scope))}
}

// checkScope enforces the canonical scope invariant.
func checkScope(scope []string) error {
	if len(scope) > MaxScope {
		return ErrScopeTooLarge
	}
	for i, name := range scope {
		if name == "" {
			return ErrBadScope
		}
		if i > 0 && scope[i-1] >= name {
			return ErrBadScope
		}
	}

	return nil
}

// Scope returns a copy of the sorted scope.
func (f *Factor) Scope() []string { return append([]string(nil), f.scope...) }

// Width returns |scope|.
func (f *Factor) Width() int { return len(f.scope) }

// Len returns the number of table entries, 2^|scope|.
func (f *Factor) Len() int { return len(f.values) }

// IsScalar reports whether the scope is empty.
func (f *Factor) IsScalar() bool { return len(f.scope) == 0 }

// Contains reports whether name is in the scope. O(log n) via sorted scope.
func (f *Factor) Contains(name string) bool { return f.position(name) >= 0 }

// position returns the scope index of name or -1.
func (f *Factor) position(name string) int {
	lo, hi := 0, len(f.scope)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case f.scope[mid] == name:
			return mid
		case f.scope[mid] < name:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return -1
}

// Values returns a copy of the dense table in index order.
func (f *Factor) Values() []float64 { return append([]float64(nil), f.values...) }

// At returns the entry at a bit-packed index.
func (f *Factor) At(idx int) (float64, error) {
	if idx < 0 || idx >= len(f.values) {
		return 0, fmt.Errorf("%s(%d): %w", ctxAt, idx, ErrOutOfRange)
	}

	return f.values[idx], nil
}

// Value returns the entry for an assignment aligned with Scope().
func (f *Factor) Value(assign []bool) (float64, error) {
	if len(assign) != len(f.scope) {
		return 0, fmt.Errorf("%s: %d values for scope %v: %w", ctxValue, len(assign), f.scope, ErrSizeMismatch)
	}

	return f.values[network.PackIndex(assign)], nil
}

// Lookup projects e onto the scope and returns the matching entry.
// Extra keys in e are ignored; a missing scope variable wraps
// network.ErrMissingEvidence.
func (f *Factor) Lookup(e network.Evidence) (float64, error) {
	idx := 0
	for _, name := range f.scope {
		v, ok := e[name]
		if !ok {
			return 0, fmt.Errorf("%s: no value for %q: %w", ctxLookup, name, network.ErrMissingEvidence)
		}
		idx <<= 1
		if v {
			idx |= 1
		}
	}

	return f.values[idx], nil
}

// Sum returns the total mass of the table.
func (f *Factor) Sum() float64 {
	s := 0.0
	for _, v := range f.values {
		s += v
	}

	return s
}

// Equal reports whether f and g share a scope and every entry differs by at
// most eps.
func (f *Factor) Equal(g *Factor, eps float64) bool {
	if f == nil || g == nil {
		return f == g
	}
	if len(f.scope) != len(g.scope) {
		return false
	}
	for i := range f.scope {
		if f.scope[i] != g.scope[i] {
			return false
		}
	}
	for i := range f.values {
		if math.Abs(f.values[i]-g.values[i]) > eps {
			return false
		}
	}

	return true
}

// String renders one row per assignment, e.g.
//
//	A=t D=f : 0.3
func (f *Factor) String() string {
	if f == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n := len(f.scope)
	for idx, v := range f.values {
		for i, name := range f.scope {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(name)
			if idx>>(n-1-i)&1 == 1 {
				sb.WriteString("=t")
			} else {
				sb.WriteString("=f")
			}
		}
		if n == 0 {
			sb.WriteString("()")
		}
		fmt.Fprintf(&sb, " : %g\n", v)
	}

	return sb.String()
}
