// SPDX-License-Identifier: MIT
// Package: bayesnet/builder
//
// impl_canonical.go - textbook networks with fixed names and tables.
//
// Tables are written as literals: parent tuple → P(true | tuple).
// Canonical constructors ignore idFn/probFn; their names are part of the
// fixture and appear in golden tests.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

// cpt is a compact literal form of one declaration.
type cpt struct {
	name    string
	parents []string
	prior   float64
	rows    []network.Row
}

// declareAll adds every declaration in order, wrapping failures with method.
func declareAll(method string, b *network.Builder, decls []cpt) error {
	for _, d := range decls {
		var err error
		if len(d.parents) == 0 {
			err = b.AddPrior(d.name, d.prior)
		} else {
			err = b.AddTable(d.name, d.parents, d.rows)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// row is shorthand for a table line.
func row(p float64, given ...bool) network.Row {
	return network.Row{Given: given, P: p}
}

// Alarm returns the burglary/earthquake alarm network:
//
//	B   E
//	 \ /
//	  A
//	 / \
//	J   M
//
// P(B)=0.001, P(E)=0.002; A|B,E; J|A; M|A.
func Alarm() Constructor {
	return func(b *network.Builder, _ builderConfig) error {
		return declareAll(MethodAlarm, b, []cpt{
			{name: "B", prior: 0.001},
			{name: "E", prior: 0.002},
			{name: "A", parents: []string{"B", "E"}, rows: []network.Row{
				row(0.95, true, true),
				row(0.94, true, false),
				row(0.29, false, true),
				row(0.001, false, false),
			}},
			{name: "J", parents: []string{"A"}, rows: []network.Row{
				row(0.90, true),
				row(0.05, false),
			}},
			{name: "M", parents: []string{"A"}, rows: []network.Row{
				row(0.70, true),
				row(0.01, false),
			}},
		})
	}
}

// Ex2 returns a five-variable network with a shared root:
//
//	  A     B
//	 / \   /
//	C   \ /
//	|    D
//	E
func Ex2() Constructor {
	return func(b *network.Builder, _ builderConfig) error {
		return declareAll(MethodEx2, b, []cpt{
			{name: "A", prior: 0.3},
			{name: "B", prior: 0.6},
			{name: "C", parents: []string{"A"}, rows: []network.Row{
				row(0.8, true),
				row(0.4, false),
			}},
			{name: "D", parents: []string{"A", "B"}, rows: []network.Row{
				row(0.7, true, true),
				row(0.8, true, false),
				row(0.1, false, true),
				row(0.2, false, false),
			}},
			{name: "E", parents: []string{"C"}, rows: []network.Row{
				row(0.7, true),
				row(0.2, false),
			}},
		})
	}
}

// Sprinkler returns the cloudy/sprinkler/rain/wet-grass network. It contains
// an undirected loop (Cloudy→Sprinkler→WetGrass←Rain←Cloudy) and a
// deterministic zero entry P(WetGrass | ¬Sprinkler, ¬Rain) = 0.
func Sprinkler() Constructor {
	return func(b *network.Builder, _ builderConfig) error {
		return declareAll(MethodSprinkler, b, []cpt{
			{name: "Cloudy", prior: 0.5},
			{name: "Sprinkler", parents: []string{"Cloudy"}, rows: []network.Row{
				row(0.1, true),
				row(0.5, false),
			}},
			{name: "Rain", parents: []string{"Cloudy"}, rows: []network.Row{
				row(0.8, true),
				row(0.2, false),
			}},
			{name: "WetGrass", parents: []string{"Sprinkler", "Rain"}, rows: []network.Row{
				row(0.99, true, true),
				row(0.90, true, false),
				row(0.90, false, true),
				row(0.00, false, false),
			}},
		})
	}
}
