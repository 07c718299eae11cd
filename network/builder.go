// SPDX-License-Identifier: MIT
// Package: bayesnet/network
//
// builder.go - two-pass construction of a Network.
//
// Pass 1 (AddPrior/AddTable): record declarations in any order; parents may
// be referenced before they are declared.
// Pass 2 (Build): resolve parent names into arena indices, back-fill children,
// verify tables, and reject cycles with the topological scan.
//
// Builder methods return errors eagerly for problems visible at the call
// site (duplicates, bad probabilities, malformed rows). Problems that need
// the whole declaration set (missing parents, cycles) surface from Build.

package network

import (
	"fmt"
	"math"
	"sort"
)

// Method tags used in error context.
const (
	methodAddPrior = "AddPrior"
	methodAddTable = "AddTable"
	methodBuild    = "Build"
)

// Row is one line of a conditional table: the parent values (aligned with
// the declared parents) and P(var=true | Given).
type Row struct {
	Given []bool
	P     float64
}

// declaration is the pass-1 record of a variable.
type declaration struct {
	name    string
	parents []string
	prior   float64
	table   []float64
}

// Builder accumulates variable declarations and produces a Network.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	decls map[string]*declaration
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{decls: make(map[string]*declaration)}
}

// AddPrior declares a root variable with P(name=true) = p.
func (b *Builder) AddPrior(name string, p float64) error {
	if err := b.checkName(methodAddPrior, name); err != nil {
		return err
	}
	if err := checkProbability(p); err != nil {
		return fmt.Errorf("%s(%s): p=%v: %w", methodAddPrior, name, p, err)
	}
	b.decls[name] = &declaration{name: name, prior: p}

	return nil
}

// AddTable declares a conditional variable with the given parents (kept in
// the supplied order) and one Row per parent tuple. Every one of the
// 2^len(parents) tuples must appear exactly once.
// Complexity: O(len(rows) * len(parents)).
func (b *Builder) AddTable(name string, parents []string, rows []Row) error {
	if err := b.checkName(methodAddTable, name); err != nil {
		return err
	}
	if len(parents) == 0 {
		return fmt.Errorf("%s(%s): table without parents: %w", methodAddTable, name, ErrIncompleteTable)
	}
	seen := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		if p == name {
			return fmt.Errorf("%s(%s): variable is its own parent: %w", methodAddTable, name, ErrCycleDetected)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%s(%s): parent %q listed twice: %w", methodAddTable, name, p, ErrMalformedNetwork)
		}
		seen[p] = struct{}{}
	}

	size := 1 << len(parents)
	table := make([]float64, size)
	filled := make([]bool, size)
	for i, row := range rows {
		if len(row.Given) != len(parents) {
			return fmt.Errorf("%s(%s): row %d has %d values, want %d: %w",
				methodAddTable, name, i, len(row.Given), len(parents), ErrIncompleteTable)
		}
		if err := checkProbability(row.P); err != nil {
			return fmt.Errorf("%s(%s): row %d: p=%v: %w", methodAddTable, name, i, row.P, err)
		}
		idx := PackIndex(row.Given)
		if filled[idx] {
			return fmt.Errorf("%s(%s): row %d repeats %v: %w", methodAddTable, name, i, row.Given, ErrIncompleteTable)
		}
		filled[idx] = true
		table[idx] = row.P
	}
	for idx, ok := range filled {
		if !ok {
			return fmt.Errorf("%s(%s): no row for %v: %w",
				methodAddTable, name, UnpackIndex(idx, len(parents)), ErrIncompleteTable)
		}
	}

	b.decls[name] = &declaration{
		name:    name,
		parents: append([]string(nil), parents...),
		table:   table,
	}

	return nil
}

// Build resolves references and returns the immutable Network.
// The Builder may keep being used afterwards; the Network does not alias it.
// Complexity: O(V log V + E) for resolution, O(V² + V·E) for the cycle scan.
func (b *Builder) Build() (*Network, error) {
	names := make([]string, 0, len(b.decls))
	for name := range b.decls {
		names = append(names, name)
	}
	sort.Strings(names)

	net := &Network{
		nodes: make([]Node, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		net.index[name] = i
	}

	// Resolve parents in declaration order.
	for i, name := range names {
		d := b.decls[name]
		node := &net.nodes[i]
		node.name = name
		node.prior = d.prior
		node.parents = append([]string(nil), d.parents...)
		node.table = append([]float64(nil), d.table...)
		node.parentIx = make([]int, len(d.parents))
		for j, p := range d.parents {
			pi, ok := net.index[p]
			if !ok {
				return nil, fmt.Errorf("%s: %s references %q: %w", methodBuild, name, p, ErrMissingParent)
			}
			node.parentIx[j] = pi
		}
	}

	// Back-fill children; iterating children in ascending index keeps them sorted.
	for ci := range net.nodes {
		for _, pi := range net.nodes[ci].parentIx {
			parent := &net.nodes[pi]
			parent.children = append(parent.children, net.nodes[ci].name)
		}
	}

	order, err := topologicalOrder(net.nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	net.order = order

	return net, nil
}

// checkName rejects empty and duplicate names.
func (b *Builder) checkName(method, name string) error {
	if name == "" {
		return fmt.Errorf("%s: empty variable name: %w", method, ErrMalformedNetwork)
	}
	if _, dup := b.decls[name]; dup {
		return fmt.Errorf("%s(%s): %w", method, name, ErrDuplicateVariable)
	}

	return nil
}

// checkProbability accepts finite values in [0,1].
func checkProbability(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return ErrInvalidProbability
	}

	return nil
}
