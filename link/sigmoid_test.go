// SPDX-License-Identifier: MIT
package link_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/linalg"
	"github.com/katalvlaran/logitbayes/link"
)

func TestLogistic_KnownValues(t *testing.T) {
	require.Equal(t, 0.5, link.Logistic(0))
	require.InDelta(t, 1/(1+math.Exp(-2)), link.Logistic(2), 1e-15)
	require.InDelta(t, 1/(1+math.Exp(3)), link.Logistic(-3), 1e-15)
}

func TestLogistic_NoOverflow(t *testing.T) {
	for _, z := range []float64{-1000, -745, -50, 50, 745, 1000} {
		v := link.Logistic(z)
		require.False(t, math.IsNaN(v), "z=%g", z)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestLogistic_Symmetry(t *testing.T) {
	for _, z := range []float64{-30, -5.5, -1, -1e-3, 0, 1e-3, 0.7, 4, 30} {
		require.InDelta(t, 1-link.Logistic(z), link.Logistic(-z), 1e-15, "z=%g", z)
	}
}

func TestLogLogistic_MatchesLogOfLogistic(t *testing.T) {
	for _, z := range []float64{-20, -3, -0.5, 0, 0.5, 3, 20} {
		require.InDelta(t, math.Log(link.Logistic(z)), link.LogLogistic(z), 1e-12, "z=%g", z)
	}
	// tails stay finite where log(σ) would not
	require.InDelta(t, -1000.0, link.LogLogistic(-1000), 1e-9)
	require.Equal(t, 0.0, link.LogLogistic(1000))
}

func TestSigmoid_StrictlyInsideUnitInterval(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		1, -1000,
		1, -40,
		1, 0,
		1, 40,
		1, 1000,
	})
	p, err := link.Sigmoid(X, []float64{0, 1})
	require.NoError(t, err)
	require.Len(t, p, 5)
	for i, v := range p {
		require.Greater(t, v, 0.0, "p[%d]", i)
		require.Less(t, v, 1.0, "p[%d]", i)
	}
	require.Equal(t, 0.5, p[2])
}

func TestSigmoid_SymmetryOnVectors(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 0.3, 1, -2, 1, 5})
	beta := []float64{0.25, -1.5}
	neg := []float64{-0.25, 1.5}

	p, err := link.Sigmoid(X, beta)
	require.NoError(t, err)
	q, err := link.Sigmoid(X, neg)
	require.NoError(t, err)
	for i := range p {
		require.InDelta(t, 1-p[i], q[i], 1e-12)
	}
	// inputs untouched
	require.Equal(t, []float64{0.25, -1.5}, beta)
}

func TestSigmoid_ShapeError(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	_, err := link.Sigmoid(X, []float64{1, 2, 3})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = link.Sigmoid(nil, []float64{1})
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestClamp(t *testing.T) {
	require.Equal(t, link.Epsilon, link.Clamp(0))
	require.Equal(t, 1-link.Epsilon, link.Clamp(1))
	require.Equal(t, 0.3, link.Clamp(0.3))
}
