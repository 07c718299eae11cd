// SPDX-License-Identifier: MIT

package netfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/bayesnet/network"
)

// priorLine matches "P(Name) = p".
var priorLine = regexp.MustCompile(`^P\(\s*([^()|\s]+)\s*\)\s*=\s*(\S+)$`)

// line is one non-blank input line with its 1-based number.
type line struct {
	no   int
	text string
}

// ParseText reads a network in the text format.
//
// Blocks are separated by blank lines; lines starting with '#' are ignored.
// Each block declares one variable, either as a prior
//
//	P(B) = 0.001
//
// or as a conditional table whose header lists the parents, a bar, then
// the variable. A rule line of dashes may follow the header. Each row gives
// one parent assignment and P(variable = true):
//
//	B E | A
//	--------
//	t t | 0.95
//	t f | 0.94
//	f t | 0.29
//	f f | 0.001
//
// Errors:
//   - ErrSyntax (with the line number) for malformed lines.
//   - network.ErrMalformedNetwork refinements for structural problems
//     (missing rows, unknown parents, cycles, duplicates, bad probabilities).
func ParseText(r io.Reader) (*network.Network, error) {
	b := network.NewBuilder()
	sc := bufio.NewScanner(r)

	var (
		block []line
		no    int
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		err := parseBlock(b, block)
		block = block[:0]

		return err
	}

	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		if text == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseText: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	net, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("ParseText: %w", err)
	}

	return net, nil
}

// parseBlock declares the single variable described by block.
func parseBlock(b *network.Builder, block []line) error {
	head := block[0]
	if strings.HasPrefix(head.text, "P(") {
		if len(block) > 1 {
			return fmt.Errorf("line %d: prior block has extra lines: %w", block[1].no, ErrSyntax)
		}
		m := priorLine.FindStringSubmatch(head.text)
		if m == nil {
			return fmt.Errorf("line %d: malformed prior %q: %w", head.no, head.text, ErrSyntax)
		}
		p, err := parseProbability(m[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", head.no, err)
		}
		if err := b.AddPrior(m[1], p); err != nil {
			return fmt.Errorf("line %d: %w", head.no, err)
		}

		return nil
	}

	left, right, ok := splitBar(head.text)
	if !ok {
		return fmt.Errorf("line %d: table header %q needs exactly one '|': %w", head.no, head.text, ErrSyntax)
	}
	parents := strings.Fields(left)
	target := strings.Fields(right)
	if len(target) != 1 {
		return fmt.Errorf("line %d: table header names %d variables after '|': %w", head.no, len(target), ErrSyntax)
	}

	rows := make([]network.Row, 0, 1<<len(parents))
	for _, ln := range block[1:] {
		if isRule(ln.text) {
			continue
		}
		row, err := parseRow(ln, len(parents))
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := b.AddTable(target[0], parents, rows); err != nil {
		return fmt.Errorf("line %d: %w", head.no, err)
	}

	return nil
}

// parseRow reads "t f ... | p" with exactly arity values.
func parseRow(ln line, arity int) (network.Row, error) {
	left, right, ok := splitBar(ln.text)
	if !ok {
		return network.Row{}, fmt.Errorf("line %d: row %q needs exactly one '|': %w", ln.no, ln.text, ErrSyntax)
	}
	toks := strings.Fields(left)
	if len(toks) != arity {
		return network.Row{}, fmt.Errorf("line %d: row has %d values, header has %d parents: %w",
			ln.no, len(toks), arity, ErrSyntax)
	}
	given := make([]bool, arity)
	for i, tok := range toks {
		v, err := parseValue(tok)
		if err != nil {
			return network.Row{}, fmt.Errorf("line %d: %w", ln.no, err)
		}
		given[i] = v
	}
	ps := strings.Fields(right)
	if len(ps) != 1 {
		return network.Row{}, fmt.Errorf("line %d: row needs one probability: %w", ln.no, ErrSyntax)
	}
	p, err := parseProbability(ps[0])
	if err != nil {
		return network.Row{}, fmt.Errorf("line %d: %w", ln.no, err)
	}

	return network.Row{Given: given, P: p}, nil
}

func splitBar(s string) (left, right string, ok bool) {
	if strings.Count(s, "|") != 1 {
		return "", "", false
	}
	left, right, _ = strings.Cut(s, "|")

	return left, right, true
}

// isRule reports whether s is a separator made of '-', '+' and '='.
func isRule(s string) bool {
	return strings.Trim(s, "-+= ") == ""
}

// WriteText writes net in the format read by ParseText, one block per
// variable in topological order. Rows are listed from all-true to all-false
// and probabilities use the shortest exact representation, so ParseText
// reproduces an identical network.
//
// Names the format cannot carry (whitespace, separators) fail with
// ErrSyntax before anything is written.
func WriteText(w io.Writer, net *network.Network) error {
	for _, name := range net.Names() {
		if err := checkName(name); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}

	bw := bufio.NewWriter(w)
	for i, name := range net.TopologicalOrder() {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		node, err := net.Node(name)
		if err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
		if p, ok := node.Prior(); ok {
			fmt.Fprintf(bw, "P(%s) = %s\n", name, formatProbability(p))
			continue
		}

		parents := node.Parents()
		header := strings.Join(parents, " ") + " | " + name
		fmt.Fprintln(bw, header)
		fmt.Fprintln(bw, strings.Repeat("-", len(header)))
		table := node.Table()
		for idx := len(table) - 1; idx >= 0; idx-- {
			vals := network.UnpackIndex(idx, len(parents))
			toks := make([]string, len(vals))
			for j, v := range vals {
				toks[j] = formatValue(v)
			}
			fmt.Fprintf(bw, "%s | %s\n", strings.Join(toks, " "), formatProbability(table[idx]))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}
