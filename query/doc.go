// SPDX-License-Identifier: MIT

// Package query parses conditional query expressions and renders answers.
//
// Syntax:
//
//	P(X)
//	P(X | A=t, B=false)
//
// Whitespace is free; values are t, f, true or false in any case. Each
// evidence variable may appear once.
//
// Format prints one line per value of the query variable:
//
//	P(B=f|J=t,M=t) = 0.7158
//	P(B=t|J=t,M=t) = 0.2842
package query
