// SPDX-License-Identifier: MIT

package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/builder"
	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/network"
)

// eps is the tolerance for floating-point table comparisons.
const eps = 1e-12

// mustNetwork builds a fixture network or fails the test.
func mustNetwork(t *testing.T, cons ...builder.Constructor) *network.Network {
	t.Helper()
	net, err := builder.BuildNetwork(nil, cons...)
	require.NoError(t, err)

	return net
}

// mustFactor creates a factor or fails the test.
func mustFactor(t *testing.T, scope []string, values []float64) *factor.Factor {
	t.Helper()
	f, err := factor.New(scope, values)
	require.NoError(t, err)

	return f
}

// TestNew_Validation covers every constructor sentinel.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		scope  []string
		values []float64
		want   error
	}{
		{"unsorted", []string{"B", "A"}, make([]float64, 4), factor.ErrBadScope},
		{"duplicate", []string{"A", "A"}, make([]float64, 4), factor.ErrBadScope},
		{"empty name", []string{""}, make([]float64, 2), factor.ErrBadScope},
		{"short table", []string{"A"}, []float64{1}, factor.ErrSizeMismatch},
		{"negative", []string{"A"}, []float64{1, -0.5}, factor.ErrBadValue},
		{"nan", []string{"A"}, []float64{math.NaN(), 0}, factor.ErrBadValue},
		{"inf", []string{"A"}, []float64{math.Inf(1), 0}, factor.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := factor.New(tc.scope, tc.values)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	big := make([]string, factor.MaxScope+1)
	for i := range big {
		big[i] = string(rune('a'+i/26)) + string(rune('a'+i%26))
	}
	_, err := factor.New(big, nil)
	assert.ErrorIs(t, err, factor.ErrScopeTooLarge)
}

// TestFactor_Accessors covers At/Value/Lookup/Contains and defensive copies.
func TestFactor_Accessors(t *testing.T) {
	scope := []string{"A", "D"}
	values := []float64{0.9, 0.1, 0.3, 0.7}
	f := mustFactor(t, scope, values)

	// caller keeps ownership of its slices
	values[0] = 42
	scope[0] = "Z"
	assert.Equal(t, []string{"A", "D"}, f.Scope())
	assert.Equal(t, []float64{0.9, 0.1, 0.3, 0.7}, f.Values())

	assert.Equal(t, 2, f.Width())
	assert.Equal(t, 4, f.Len())
	assert.False(t, f.IsScalar())
	assert.True(t, f.Contains("D"))
	assert.False(t, f.Contains("B"))
	assert.InDelta(t, 2.0, f.Sum(), eps)

	v, err := f.At(2)
	require.NoError(t, err)
	assert.Equal(t, 0.3, v)
	_, err = f.At(4)
	assert.ErrorIs(t, err, factor.ErrOutOfRange)
	_, err = f.At(-1)
	assert.ErrorIs(t, err, factor.ErrOutOfRange)

	v, err = f.Value([]bool{true, true})
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)
	_, err = f.Value([]bool{true})
	assert.ErrorIs(t, err, factor.ErrSizeMismatch)

	v, err = f.Lookup(network.Evidence{"A": false, "D": true, "X": true})
	require.NoError(t, err)
	assert.Equal(t, 0.1, v)
	_, err = f.Lookup(network.Evidence{"A": false})
	assert.ErrorIs(t, err, network.ErrMissingEvidence)
}

// TestScalar checks the empty-scope degenerate factor.
func TestScalar(t *testing.T) {
	s := factor.Scalar(0.25)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Scope())
	v, err := s.Lookup(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
	assert.Equal(t, "() : 0.25\n", s.String())
}

// TestFactor_String pins the row rendering.
func TestFactor_String(t *testing.T) {
	f := mustFactor(t, []string{"A"}, []float64{0.7, 0.3})
	assert.Equal(t, "A=f : 0.7\nA=t : 0.3\n", f.String())
}

// TestFactor_Equal checks scope and tolerance handling.
func TestFactor_Equal(t *testing.T) {
	a := mustFactor(t, []string{"A"}, []float64{0.7, 0.3})
	b := mustFactor(t, []string{"A"}, []float64{0.7 + 1e-10, 0.3})
	c := mustFactor(t, []string{"B"}, []float64{0.7, 0.3})

	assert.True(t, a.Equal(b, 1e-9))
	assert.False(t, a.Equal(b, 1e-12))
	assert.False(t, a.Equal(c, 1))
	assert.False(t, a.Equal(nil, 1))
}

// TestAssignments checks length, uniqueness, ordering and memoization.
func TestAssignments(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		rows := factor.Assignments(n)
		require.Len(t, rows, 1<<n)
		seen := make(map[int]struct{}, len(rows))
		for i, r := range rows {
			assert.Len(t, r, n)
			assert.Equal(t, i, network.PackIndex(r), "row %d out of order", i)
			seen[network.PackIndex(r)] = struct{}{}
		}
		assert.Len(t, seen, len(rows), "rows must be unique")

		again := factor.Assignments(n)
		if n > 0 {
			assert.Same(t, &rows[0][0], &again[0][0], "second call must hit the cache")
		}
	}

	assert.Nil(t, factor.Assignments(-1))
	assert.Nil(t, factor.Assignments(factor.MaxScope+1))
}
