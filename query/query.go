// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/network"
)

// ErrSyntax is wrapped by every Parse error.
var ErrSyntax = errors.New("query: syntax error")

// DefaultPrecision is the number of decimals Format prints.
const DefaultPrecision = 4

// Query is a parsed P(Var | Evidence) expression.
type Query struct {
	Var      string
	Evidence network.Evidence
}

// Parse reads "P(X)" or "P(X|A=t,B=f)".
func Parse(s string) (Query, error) {
	src := strings.TrimSpace(s)
	if !strings.HasPrefix(src, "P(") || !strings.HasSuffix(src, ")") {
		return Query{}, fmt.Errorf("Parse(%q): want P(...): %w", s, ErrSyntax)
	}
	inner := src[len("P(") : len(src)-1]

	head, tail, conditional := strings.Cut(inner, "|")
	x := strings.TrimSpace(head)
	if err := checkName(x); err != nil {
		return Query{}, fmt.Errorf("Parse(%q): query variable: %w", s, err)
	}

	q := Query{Var: x, Evidence: network.Evidence{}}
	if !conditional {
		return q, nil
	}
	if strings.TrimSpace(tail) == "" {
		return Query{}, fmt.Errorf("Parse(%q): empty evidence after '|': %w", s, ErrSyntax)
	}
	for _, item := range strings.Split(tail, ",") {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			return Query{}, fmt.Errorf("Parse(%q): %q is not Name=value: %w", s, strings.TrimSpace(item), ErrSyntax)
		}
		name = strings.TrimSpace(name)
		if err := checkName(name); err != nil {
			return Query{}, fmt.Errorf("Parse(%q): evidence: %w", s, err)
		}
		if _, dup := q.Evidence[name]; dup {
			return Query{}, fmt.Errorf("Parse(%q): %s given twice: %w", s, name, ErrSyntax)
		}
		v, err := parseValue(strings.TrimSpace(value))
		if err != nil {
			return Query{}, fmt.Errorf("Parse(%q): %s: %w", s, name, err)
		}
		q.Evidence[name] = v
	}

	return q, nil
}

// checkName rejects empty names and names containing separators.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrSyntax)
	}
	if strings.ContainsAny(name, "()|,= \t") {
		return fmt.Errorf("name %q contains a separator: %w", name, ErrSyntax)
	}

	return nil
}

func parseValue(tok string) (bool, error) {
	switch strings.ToLower(tok) {
	case "t", "true":
		return true, nil
	case "f", "false":
		return false, nil
	default:
		return false, fmt.Errorf("value %q is not t/f: %w", tok, ErrSyntax)
	}
}

func formatValue(v bool) string {
	if v {
		return "t"
	}

	return "f"
}

// condition renders "|A=t,B=f" with names sorted, or "" without evidence.
func (q Query) condition() string {
	if len(q.Evidence) == 0 {
		return ""
	}
	names := q.Evidence.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + formatValue(q.Evidence[name])
	}

	return "|" + strings.Join(parts, ",")
}

// String renders q in canonical form, e.g. "P(B|J=t,M=t)".
func (q Query) String() string {
	return "P(" + q.Var + q.condition() + ")"
}

// Format renders d for q with DefaultPrecision decimals.
func Format(q Query, d inference.Distribution) string {
	return FormatPrec(q, d, DefaultPrecision)
}

// FormatPrec renders d for q with prec decimals (negative means shortest exact).
// The false line comes first.
func FormatPrec(q Query, d inference.Distribution, prec int) string {
	var sb strings.Builder
	cond := q.condition()
	for _, v := range []bool{false, true} {
		fmt.Fprintf(&sb, "P(%s=%s%s) = %s\n", q.Var, formatValue(v), cond, formatFloat(d.P(v), prec))
	}

	return sb.String()
}

func formatFloat(p float64, prec int) string {
	if prec < 0 {
		return fmt.Sprintf("%v", p)
	}

	return fmt.Sprintf("%.*f", prec, p)
}
