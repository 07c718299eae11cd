// SPDX-License-Identifier: MIT

// Package netfile reads and writes network.Network descriptions.
//
// Two formats are supported:
//
//   - Text (.bn): blank-line separated blocks, one per variable. A block is
//     either a prior line "P(X) = p" or a table with a "Parents... | X"
//     header, an optional dashed rule, and one "t f ... | p" row per parent
//     assignment. Lines starting with '#' are comments.
//   - YAML (.yaml, .yml): a "variables" list of {name, prior} or
//     {name, parents, table: [{when, p}]} entries.
//
// ParseText/WriteText and ParseYAML/WriteYAML round-trip exactly. Load
// picks the parser by file extension.
//
// Syntax problems wrap ErrSyntax and carry a line number (text) or a
// variables[i] path (YAML). Well-formed files describing an invalid network
// return the network.ErrMalformedNetwork refinement raised by
// network.Builder.
package netfile
