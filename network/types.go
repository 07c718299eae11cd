// SPDX-License-Identifier: MIT
// Package: bayesnet/network
//
// types.go - Network, Node, Evidence and the sentinel error set.
//
// Storage model:
//   - Nodes live in a fixed arena ([]Node) sorted by variable name.
//   - Parent references are resolved once in Build into integer indices;
//     children are back-filled from them.
//   - Tables are dense: 2^|parents| entries of P(var=true | parent tuple),
//     indexed by the bit-packed tuple (first parent = most significant bit,
//     false=0, true=1).
//
// Errors:
//
//	ErrMalformedNetwork    - umbrella for every structural defect below.
//	ErrCycleDetected       - parent/child graph is not acyclic.
//	ErrMissingParent       - a parent name is not a declared variable.
//	ErrIncompleteTable     - table rows missing, duplicated or of wrong arity.
//	ErrDuplicateVariable   - variable declared twice.
//	ErrInvalidProbability  - probability outside [0,1] or not finite.
//	ErrMissingEvidence     - a lookup needs a value the evidence does not carry.
//	ErrUnknownVariable     - a name is not a variable of the network.

package network

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedNetwork reports a structural defect of the network. Every
// refinement below matches it through errors.Is.
var ErrMalformedNetwork = errors.New("network: malformed network")

var (
	// ErrCycleDetected indicates the parent/child graph contains a cycle.
	ErrCycleDetected = fmt.Errorf("%w: cycle detected", ErrMalformedNetwork)

	// ErrMissingParent indicates a parent reference to an undeclared variable.
	ErrMissingParent = fmt.Errorf("%w: missing parent", ErrMalformedNetwork)

	// ErrIncompleteTable indicates a conditional table that does not cover
	// every parent tuple exactly once.
	ErrIncompleteTable = fmt.Errorf("%w: incomplete table", ErrMalformedNetwork)

	// ErrDuplicateVariable indicates the same variable was declared twice.
	ErrDuplicateVariable = fmt.Errorf("%w: duplicate variable", ErrMalformedNetwork)

	// ErrInvalidProbability indicates a probability outside [0,1], NaN or Inf.
	ErrInvalidProbability = fmt.Errorf("%w: invalid probability", ErrMalformedNetwork)
)

var (
	// ErrMissingEvidence indicates a conditional lookup without a value for
	// the variable itself or for one of its parents.
	ErrMissingEvidence = errors.New("network: missing evidence")

	// ErrUnknownVariable indicates a name that is not part of the network.
	ErrUnknownVariable = errors.New("network: unknown variable")
)

// Node is one binary random variable of a Network.
// A node without parents carries a prior; otherwise a dense table.
type Node struct {
	name     string
	parents  []string  // declaration order
	children []string  // sorted
	prior    float64   // P(true), used only when parents is empty
	table    []float64 // len == 1<<len(parents)

	parentIx []int // arena indices aligned with parents
}

// Name returns the variable name.
func (n *Node) Name() string { return n.name }

// Parents returns a copy of the parent names in declaration order.
func (n *Node) Parents() []string { return append([]string(nil), n.parents...) }

// Children returns a copy of the child names in ascending order.
func (n *Node) Children() []string { return append([]string(nil), n.children...) }

// HasPrior reports whether the node is a root carrying a single prior.
func (n *Node) HasPrior() bool { return len(n.parents) == 0 }

// Prior returns P(true) for a root node; ok is false for conditional nodes.
func (n *Node) Prior() (p float64, ok bool) {
	if !n.HasPrior() {
		return 0, false
	}

	return n.prior, true
}

// Table returns a copy of the dense conditional table (nil for roots).
// Entry i holds P(true | parents) for the tuple whose bit-packed index is i.
func (n *Node) Table() []float64 {
	if n.HasPrior() {
		return nil
	}

	return append([]float64(nil), n.table...)
}

// ProbTrue returns P(true | given), with given aligned to Parents().
// Complexity: O(|parents|).
func (n *Node) ProbTrue(given []bool) (float64, error) {
	if len(given) != len(n.parents) {
		return 0, fmt.Errorf("Node.ProbTrue(%s): got %d parent values, want %d: %w",
			n.name, len(given), len(n.parents), ErrMissingEvidence)
	}
	if n.HasPrior() {
		return n.prior, nil
	}

	return n.table[PackIndex(given)], nil
}

// Network is an immutable Bayesian network over binary variables.
// It is safe for concurrent readers once returned by Builder.Build.
type Network struct {
	nodes []Node         // sorted by name
	index map[string]int // name -> arena index
	order []string       // cached topological order
}

// Len returns the number of variables.
func (net *Network) Len() int { return len(net.nodes) }

// Names returns every variable name in ascending order.
func (net *Network) Names() []string {
	out := make([]string, len(net.nodes))
	for i := range net.nodes {
		out[i] = net.nodes[i].name
	}

	return out
}

// Has reports whether name is a variable of the network.
func (net *Network) Has(name string) bool {
	_, ok := net.index[name]

	return ok
}

// Node returns the node registered under name.
func (net *Network) Node(name string) (*Node, error) {
	i, ok := net.index[name]
	if !ok {
		return nil, fmt.Errorf("Network.Node(%q): %w", name, ErrUnknownVariable)
	}

	return &net.nodes[i], nil
}

// Parents returns the parents of name in declaration order.
func (net *Network) Parents(name string) ([]string, error) {
	node, err := net.Node(name)
	if err != nil {
		return nil, err
	}

	return node.Parents(), nil
}

// Children returns the children of name in ascending order.
func (net *Network) Children(name string) ([]string, error) {
	node, err := net.Node(name)
	if err != nil {
		return nil, err
	}

	return node.Children(), nil
}

// CheckEvidence verifies that every evidence key names a variable.
func (net *Network) CheckEvidence(e Evidence) error {
	for _, name := range e.Names() {
		if !net.Has(name) {
			return fmt.Errorf("evidence %q: %w", name, ErrUnknownVariable)
		}
	}

	return nil
}

// Evidence maps variable names to observed values. A nil Evidence is empty.
type Evidence map[string]bool

// Clone returns an independent copy (never nil).
func (e Evidence) Clone() Evidence {
	out := make(Evidence, len(e)+1)
	for k, v := range e {
		out[k] = v
	}

	return out
}

// With returns a copy of e extended with name=value.
func (e Evidence) With(name string, value bool) Evidence {
	out := e.Clone()
	out[name] = value

	return out
}

// Without returns a copy of e with name removed.
func (e Evidence) Without(name string) Evidence {
	out := e.Clone()
	delete(out, name)

	return out
}

// Names returns the observed variable names in ascending order.
func (e Evidence) Names() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// PackIndex bit-packs a boolean tuple into a table index.
// values[0] is the most significant bit; false=0, true=1.
func PackIndex(values []bool) int {
	idx := 0
	for _, v := range values {
		idx <<= 1
		if v {
			idx |= 1
		}
	}

	return idx
}

// UnpackIndex is the inverse of PackIndex for a tuple of length n.
func UnpackIndex(idx, n int) []bool {
	out := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = idx&1 == 1
		idx >>= 1
	}

	return out
}
