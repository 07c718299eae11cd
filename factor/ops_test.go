// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/builder"
	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/network"
)

// TestScopeOf drops evidence variables and sorts the rest.
func TestScopeOf(t *testing.T) {
	net := mustNetwork(t, builder.Ex2())

	scope, err := factor.ScopeOf(net, "D", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, scope)

	scope, err = factor.ScopeOf(net, "D", network.Evidence{"B": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, scope)

	scope, err = factor.ScopeOf(net, "A", network.Evidence{"A": false})
	require.NoError(t, err)
	assert.Empty(t, scope)

	_, err = factor.ScopeOf(net, "Q", nil)
	assert.ErrorIs(t, err, network.ErrUnknownVariable)
}

// TestMake_Evidence builds D's factor with B observed.
func TestMake_Evidence(t *testing.T) {
	net := mustNetwork(t, builder.Ex2())

	f, err := factor.Make(net, "D", network.Evidence{"B": true})
	require.NoError(t, err)
	want := mustFactor(t, []string{"A", "D"}, []float64{0.9, 0.1, 0.3, 0.7})
	assert.True(t, want.Equal(f, eps), "got\n%s", f)
}

// TestMake_Dense verifies density and conditional normalization without evidence.
func TestMake_Dense(t *testing.T) {
	net := mustNetwork(t, builder.Alarm())

	f, err := factor.Make(net, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, f.Scope())
	assert.Equal(t, 8, f.Len())
	// summing out the child leaves 1 for every parent tuple
	out, err := factor.SumOut("A", []*factor.Factor{f})
	require.NoError(t, err)
	require.Len(t, out, 1)
	for _, v := range out[0].Values() {
		assert.InDelta(t, 1.0, v, eps)
	}
}

// TestMake_FullyObserved yields a scalar equal to QueryGiven.
func TestMake_FullyObserved(t *testing.T) {
	net := mustNetwork(t, builder.Alarm())
	e := network.Evidence{"A": true, "B": false, "E": true}

	f, err := factor.Make(net, "A", e)
	require.NoError(t, err)
	assert.True(t, f.IsScalar())
	p, err := net.QueryGiven("A", e)
	require.NoError(t, err)
	v, err := f.At(0)
	require.NoError(t, err)
	assert.InDelta(t, p, v, eps)

	_, err = factor.Make(net, "Q", nil)
	assert.ErrorIs(t, err, network.ErrUnknownVariable)
}

// TestPointwise_Join reproduces a hand-computed three-variable join.
func TestPointwise_Join(t *testing.T) {
	f1 := mustFactor(t, []string{"C", "E"}, []float64{0.8, 0.2, 0.3, 0.7})
	f2 := mustFactor(t, []string{"A", "C"}, []float64{0.6, 0.4, 0.2, 0.8})

	got, err := factor.Pointwise(f1, f2)
	require.NoError(t, err)
	want := mustFactor(t, []string{"A", "C", "E"},
		[]float64{0.48, 0.12, 0.12, 0.28, 0.16, 0.04, 0.24, 0.56})
	assert.True(t, want.Equal(got, eps), "got\n%s", got)
}

// TestPointwise_Commutative checks a·b == b·a and (a·b)·c == a·(b·c).
func TestPointwise_Commutative(t *testing.T) {
	a := mustFactor(t, []string{"A", "C"}, []float64{0.6, 0.4, 0.2, 0.8})
	b := mustFactor(t, []string{"B", "C"}, []float64{0.1, 0.9, 0.5, 0.5})
	c := mustFactor(t, []string{"A", "D"}, []float64{0.3, 0.7, 0.25, 0.75})

	ab, err := factor.Pointwise(a, b)
	require.NoError(t, err)
	ba, err := factor.Pointwise(b, a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba, eps))

	abC, err := factor.Pointwise(ab, c)
	require.NoError(t, err)
	bc, err := factor.Pointwise(b, c)
	require.NoError(t, err)
	bcA, err := factor.Pointwise(bc, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, abC.Scope())
	assert.True(t, abC.Equal(bcA, eps))
}

// TestPointwise_Disjoint yields an outer product; scalars scale.
func TestPointwise_Disjoint(t *testing.T) {
	a := mustFactor(t, []string{"A"}, []float64{0.25, 0.75})
	b := mustFactor(t, []string{"B"}, []float64{0.5, 2})

	got, err := factor.Pointwise(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.125, 0.5, 0.375, 1.5}, got.Values())

	scaled, err := factor.Pointwise(factor.Scalar(2), a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, scaled.Values())

	_, err = factor.Pointwise(a, nil)
	assert.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestSumOut_Single sums the child out of a conditional factor.
func TestSumOut_Single(t *testing.T) {
	f := mustFactor(t, []string{"A", "D"}, []float64{0.9, 0.1, 0.3, 0.7})

	out, err := factor.SumOut("D", []*factor.Factor{f})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"A"}, out[0].Scope())
	assert.InDelta(t, 1.0, out[0].Values()[0], eps)
	assert.InDelta(t, 1.0, out[0].Values()[1], eps)
}

// TestSumOut_JoinsFirst checks join-then-marginalize and list ordering.
func TestSumOut_JoinsFirst(t *testing.T) {
	a := mustFactor(t, []string{"A", "C"}, []float64{0.6, 0.4, 0.2, 0.8})
	b := mustFactor(t, []string{"C", "E"}, []float64{0.8, 0.2, 0.3, 0.7})
	other := mustFactor(t, []string{"B"}, []float64{0.4, 0.6})

	out, err := factor.SumOut("C", []*factor.Factor{a, other, b})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Same(t, other, out[0], "untouched factors keep their order")

	// Σ_C a(A,C)·b(C,E)
	want := mustFactor(t, []string{"A", "E"}, []float64{
		0.6*0.8 + 0.4*0.3, 0.6*0.2 + 0.4*0.7,
		0.2*0.8 + 0.8*0.3, 0.2*0.2 + 0.8*0.7,
	})
	assert.True(t, want.Equal(out[1], eps), "got\n%s", out[1])
}

// TestSumOut_ReducesScopeByOne checks every position of a three-variable scope.
func TestSumOut_ReducesScopeByOne(t *testing.T) {
	f := mustFactor(t, []string{"A", "B", "C"}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	cases := []struct {
		name  string
		scope []string
		want  []float64
	}{
		{"A", []string{"B", "C"}, []float64{1 + 5, 2 + 6, 3 + 7, 4 + 8}},
		{"B", []string{"A", "C"}, []float64{1 + 3, 2 + 4, 5 + 7, 6 + 8}},
		{"C", []string{"A", "B"}, []float64{1 + 2, 3 + 4, 5 + 6, 7 + 8}},
	}
	for _, tc := range cases {
		out, err := factor.SumOut(tc.name, []*factor.Factor{f})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, f.Width()-1, out[0].Width())
		assert.Equal(t, tc.scope, out[0].Scope())
		assert.Equal(t, tc.want, out[0].Values())
		assert.Equal(t, 1<<out[0].Width(), out[0].Len(), "dense over reduced scope")
	}
}

// TestSumOut_ToScalar keeps the empty-scope marginal in the list.
func TestSumOut_ToScalar(t *testing.T) {
	f := mustFactor(t, []string{"A"}, []float64{0.25, 0.5})
	out, err := factor.SumOut("A", []*factor.Factor{f})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsScalar())
	assert.Equal(t, []float64{0.75}, out[0].Values())
}

// TestSumOut_Absent returns the list unchanged.
func TestSumOut_Absent(t *testing.T) {
	f := mustFactor(t, []string{"A"}, []float64{0.25, 0.5})
	out, err := factor.SumOut("Z", []*factor.Factor{f})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Same(t, f, out[0])

	_, err = factor.SumOut("A", []*factor.Factor{nil})
	assert.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestProduct folds joins and defaults to the unit scalar.
func TestProduct(t *testing.T) {
	one, err := factor.Product()
	require.NoError(t, err)
	assert.True(t, one.IsScalar())
	assert.Equal(t, []float64{1}, one.Values())

	a := mustFactor(t, []string{"A"}, []float64{0.25, 0.75})
	b := mustFactor(t, []string{"A"}, []float64{2, 4})
	got, err := factor.Product(a, b, factor.Scalar(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1.5}, got.Values())

	_, err = factor.Product(a, nil)
	assert.ErrorIs(t, err, factor.ErrNilFactor)
}
