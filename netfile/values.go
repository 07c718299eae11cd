// SPDX-License-Identifier: MIT

package netfile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// checkName rejects names the text format and queries cannot carry:
// empty names, whitespace, the separators ( ) | , = and a leading '#'.
func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty variable name: %w", ErrSyntax)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("variable name %q contains whitespace: %w", name, ErrSyntax)
	case strings.ContainsAny(name, "()|,="):
		return fmt.Errorf("variable name %q contains a separator: %w", name, ErrSyntax)
	case strings.HasPrefix(name, "#"):
		return fmt.Errorf("variable name %q starts with '#': %w", name, ErrSyntax)
	}

	return nil
}

// parseValue reads a binary value token: t, f, true or false (any case).
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

// parseProbability reads a float token. Range checks are left to
// network.Builder so that they surface as ErrInvalidProbability.
func parseProbability(tok string) (float64, error) {
	p, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("probability %q: %w", tok, ErrSyntax)
	}

	return p, nil
}

// formatProbability uses the shortest representation that round-trips.
func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
