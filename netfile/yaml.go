// SPDX-License-Identifier: MIT

package netfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayesnet/network"
)

// DocumentYAML is the YAML file structure.
type DocumentYAML struct {
	Variables []VariableYAML `yaml:"variables"`
}

// VariableYAML declares one variable: either Prior, or Parents with Table.
type VariableYAML struct {
	Name    string    `yaml:"name"`
	Prior   *float64  `yaml:"prior,omitempty"`
	Parents []string  `yaml:"parents,omitempty,flow"`
	Table   []RowYAML `yaml:"table,omitempty"`
}

// RowYAML is one table row: parent values (t/f) and P(variable = true).
type RowYAML struct {
	When []string `yaml:"when,flow"`
	P    float64  `yaml:"p"`
}

// ParseYAML reads a network from a YAML document:
//
//	variables:
//	  - name: B
//	    prior: 0.001
//	  - name: A
//	    parents: [B, E]
//	    table:
//	      - {when: [t, t], p: 0.95}
//	      ...
//
// Unknown keys are rejected.
//
// Errors:
//   - ErrSyntax for YAML errors, unknown keys, names with whitespace or
//     separators, or a variable that declares both or neither of prior
//     and table.
//   - network.ErrMalformedNetwork refinements for structural problems.
func ParseYAML(r io.Reader) (*network.Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc DocumentYAML
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ParseYAML: empty document: %w", ErrSyntax)
		}
		return nil, fmt.Errorf("ParseYAML: %w: %w", ErrSyntax, err)
	}

	return convertYAMLToNetwork(&doc)
}

func convertYAMLToNetwork(doc *DocumentYAML) (*network.Network, error) {
	b := network.NewBuilder()
	for i, v := range doc.Variables {
		for _, name := range append([]string{v.Name}, v.Parents...) {
			if err := checkName(name); err != nil {
				return nil, fmt.Errorf("ParseYAML: variables[%d]: %w", i, err)
			}
		}
		hasTable := len(v.Parents) > 0 || len(v.Table) > 0
		switch {
		case v.Prior != nil && hasTable:
			return nil, fmt.Errorf("ParseYAML: variables[%d] %q: both prior and table: %w", i, v.Name, ErrSyntax)
		case v.Prior == nil && !hasTable:
			return nil, fmt.Errorf("ParseYAML: variables[%d] %q: neither prior nor table: %w", i, v.Name, ErrSyntax)
		case v.Prior != nil:
			if err := b.AddPrior(v.Name, *v.Prior); err != nil {
				return nil, fmt.Errorf("ParseYAML: variables[%d]: %w", i, err)
			}
			continue
		}

		rows := make([]network.Row, len(v.Table))
		for j, r := range v.Table {
			given := make([]bool, len(r.When))
			for k, tok := range r.When {
				val, err := parseValue(tok)
				if err != nil {
					return nil, fmt.Errorf("ParseYAML: variables[%d].table[%d]: %w", i, j, err)
				}
				given[k] = val
			}
			rows[j] = network.Row{Given: given, P: r.P}
		}
		if err := b.AddTable(v.Name, v.Parents, rows); err != nil {
			return nil, fmt.Errorf("ParseYAML: variables[%d]: %w", i, err)
		}
	}

	net, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("ParseYAML: %w", err)
	}

	return net, nil
}

// convertNetworkToYAML lists variables in topological order.
func convertNetworkToYAML(net *network.Network) (*DocumentYAML, error) {
	doc := &DocumentYAML{}
	for _, name := range net.TopologicalOrder() {
		node, err := net.Node(name)
		if err != nil {
			return nil, err
		}
		v := VariableYAML{Name: name}
		if p, ok := node.Prior(); ok {
			v.Prior = &p
			doc.Variables = append(doc.Variables, v)
			continue
		}

		v.Parents = node.Parents()
		table := node.Table()
		for idx := len(table) - 1; idx >= 0; idx-- {
			vals := network.UnpackIndex(idx, len(v.Parents))
			when := make([]string, len(vals))
			for k, b := range vals {
				when[k] = formatValue(b)
			}
			v.Table = append(v.Table, RowYAML{When: when, P: table[idx]})
		}
		doc.Variables = append(doc.Variables, v)
	}

	return doc, nil
}

// WriteYAML writes net in the format read by ParseYAML.
func WriteYAML(w io.Writer, net *network.Network) error {
	doc, err := convertNetworkToYAML(net)
	if err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}
