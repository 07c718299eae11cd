// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bayesnet/network"
)

const (
	ctxScopeOf = "ScopeOf"
	ctxMake    = "Make"
)

// ScopeOf returns the scope of the factor Make would build for name:
// sorted(parents(name) ∪ {name}) without the variables fixed by e.
// Its length is the "factor-variable count" used to order elimination.
//
// Errors:
//   - network.ErrUnknownVariable if name is not in net.
//
// Complexity: O(p log p), p = |parents|+1.
func ScopeOf(net *network.Network, name string, e network.Evidence) ([]string, error) {
	node, err := net.Node(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxScopeOf, err)
	}
	vars := append(node.Parents(), name)
	scope := vars[:0]
	for _, v := range vars {
		if _, fixed := e[v]; !fixed {
			scope = append(scope, v)
		}
	}
	sort.Strings(scope)

	return scope, nil
}

// Make builds the factor contributed by name's conditional table under e.
//
// Implementation:
//   - Stage 1: vars = parents(name) ∪ {name}; scope = ScopeOf(name, e).
//   - Stage 2: walk every assignment over vars (Assignments(|vars|)).
//   - Stage 3: skip assignments that disagree with e.
//   - Stage 4: store net.QueryGiven(name, assignment) at the assignment's
//     projection onto scope.
//
// Behavior highlights:
//   - Dense by construction: evidence variables are all in vars, so the
//     surviving assignments differ only on scope variables and each output
//     key is written exactly once.
//   - Evidence on variables outside vars is irrelevant and ignored.
//
// Errors:
//   - network.ErrUnknownVariable, ErrScopeTooLarge.
//
// Complexity:
//   - Time O(2^p · p), Space O(2^|scope|), p = |parents|+1.
func Make(net *network.Network, name string, e network.Evidence) (*Factor, error) {
	node, err := net.Node(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMake, err)
	}
	vars := append(node.Parents(), name)
	if len(vars) > MaxScope {
		return nil, fmt.Errorf("%s(%s): %d variables: %w", ctxMake, name, len(vars), ErrScopeTooLarge)
	}
	scope, err := ScopeOf(net, name, e)
	if err != nil {
		return nil, err
	}

	// weight[i] is the bit vars[i] contributes to the output index (0 if fixed)
	weight := make([]int, len(vars))
	for i, v := range vars {
		if pos := indexOf(scope, v); pos >= 0 {
			weight[i] = 1 << (len(scope) - 1 - pos)
		}
	}

	out := newZero(scope)
	work := make(network.Evidence, len(vars))
	for _, row := range Assignments(len(vars)) {
		if !consistent(vars, row, e) {
			continue
		}
		key := 0
		for i, v := range vars {
			work[v] = row[i]
			if row[i] {
				key += weight[i]
			}
		}
		p, err := net.QueryGiven(name, work)
		if err != nil {
			return nil, fmt.Errorf("%s(%s): %w", ctxMake, name, err)
		}
		out.values[key] = p
	}

	return out, nil
}

// consistent reports whether row (aligned with vars) agrees with e.
func consistent(vars []string, row []bool, e network.Evidence) bool {
	for i, v := range vars {
		if ev, ok := e[v]; ok && ev != row[i] {
			return false
		}
	}

	return true
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
