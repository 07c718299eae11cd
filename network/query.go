// SPDX-License-Identifier: MIT

package network

import "fmt"

// QueryGiven returns P(name = e[name] | e[parents(name)]).
//
// It is the single lookup used by every inference algorithm, so both
// engines agree on how a table entry is read.
//
// Errors:
//   - ErrUnknownVariable if name is not in the network.
//   - ErrMissingEvidence if e lacks name or any of its parents.
//
// Complexity: O(|parents|).
func (net *Network) QueryGiven(name string, e Evidence) (float64, error) {
	i, ok := net.index[name]
	if !ok {
		return 0, fmt.Errorf("QueryGiven(%q): %w", name, ErrUnknownVariable)
	}
	value, ok := e[name]
	if !ok {
		return 0, fmt.Errorf("QueryGiven(%q): no value for %q: %w", name, name, ErrMissingEvidence)
	}

	node := &net.nodes[i]
	p := node.prior
	if !node.HasPrior() {
		idx := 0
		for _, parent := range node.parents {
			pv, ok := e[parent]
			if !ok {
				return 0, fmt.Errorf("QueryGiven(%q): no value for parent %q: %w", name, parent, ErrMissingEvidence)
			}
			idx <<= 1
			if pv {
				idx |= 1
			}
		}
		p = node.table[idx]
	}

	if value {
		return p, nil
	}

	return 1 - p, nil
}
