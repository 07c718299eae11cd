// SPDX-License-Identifier: MIT

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/network"
	"github.com/katalvlaran/bayesnet/query"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want query.Query
	}{
		{"P(B)", query.Query{Var: "B", Evidence: network.Evidence{}}},
		{"  P( Burglary )  ", query.Query{Var: "Burglary", Evidence: network.Evidence{}}},
		{"P(B|J=t,M=t)", query.Query{Var: "B", Evidence: network.Evidence{"J": true, "M": true}}},
		{"P(B | J = true , M=F)", query.Query{Var: "B", Evidence: network.Evidence{"J": true, "M": false}}},
		{"P(X1|X0=False)", query.Query{Var: "X1", Evidence: network.Evidence{"X0": false}}},
	}
	for _, tc := range tests {
		got, err := query.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"B",
		"P(B",
		"Q(B)",
		"P()",
		"P(A B)",
		"P(B|)",
		"P(B|J)",
		"P(B|J=maybe)",
		"P(B|=t)",
		"P(B|J=t,J=f)",
		"P(B|J=t|M=t)",
		"P(B|J=t,)",
	} {
		_, err := query.Parse(in)
		assert.ErrorIs(t, err, query.ErrSyntax, in)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	q, err := query.Parse("P(B | M=t, J=f)")
	require.NoError(t, err)
	assert.Equal(t, "P(B|J=f,M=t)", q.String())

	again, err := query.Parse(q.String())
	require.NoError(t, err)
	assert.Equal(t, q, again)

	assert.Equal(t, "P(A)", query.Query{Var: "A"}.String())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	q := query.Query{Var: "B", Evidence: network.Evidence{"M": true, "J": true}}
	d := inference.Distribution{False: 0.7158281646356071, True: 0.28417183536439294}

	assert.Equal(t, "P(B=f|J=t,M=t) = 0.7158\nP(B=t|J=t,M=t) = 0.2842\n", query.Format(q, d))
	assert.Equal(t, "P(B=f|J=t,M=t) = 0.72\nP(B=t|J=t,M=t) = 0.28\n", query.FormatPrec(q, d, 2))
	assert.Equal(t, "P(X=f) = 0.7\nP(X=t) = 0.3\n",
		query.FormatPrec(query.Query{Var: "X"}, inference.Distribution{False: 0.7, True: 0.3}, -1))
}
