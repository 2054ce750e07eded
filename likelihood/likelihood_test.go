// SPDX-License-Identifier: MIT
package likelihood_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/likelihood"
	"github.com/katalvlaran/logitbayes/linalg"
)

// handBuilt is a three-observation example with an intercept column.
func handBuilt() ([]float64, *mat.Dense, []float64) {
	y := []float64{0, 1, 1}
	X := mat.NewDense(3, 2, []float64{
		1, 0.5,
		1, -1,
		1, 2,
	})
	beta := []float64{0.3, -0.7}
	return y, X, beta
}

// closedForm evaluates the Bernoulli log-likelihood element by element,
// independently of the package code.
func closedForm(y []float64, X *mat.Dense, beta []float64) float64 {
	var s float64
	for i := range y {
		z := X.At(i, 0)*beta[0] + X.At(i, 1)*beta[1]
		p := 1 / (1 + math.Exp(-z))
		s += y[i]*math.Log(p) + (1-y[i])*math.Log(1-p)
	}
	return s
}

func TestDataLogLikelihood_MatchesClosedForm(t *testing.T) {
	y, X, beta := handBuilt()
	got, err := likelihood.DataLogLikelihood(y, X, beta)
	require.NoError(t, err)
	require.InDelta(t, closedForm(y, X, beta), got, 1e-12)
	// pinned against an independent evaluation
	require.InDelta(t, -2.3690566606469394, got, 1e-12)
}

func TestLogLikelihood_FromProbabilities(t *testing.T) {
	y, X, beta := handBuilt()
	d, err := likelihood.NewData(y, X)
	require.NoError(t, err)
	p, err := d.Probabilities(beta)
	require.NoError(t, err)

	ll, err := likelihood.LogLikelihood(y, p)
	require.NoError(t, err)
	require.InDelta(t, closedForm(y, X, beta), ll, 1e-12)
}

func TestLikelihood_VectorAndProductConsistency(t *testing.T) {
	y, X, beta := handBuilt()
	d, err := likelihood.NewData(y, X)
	require.NoError(t, err)

	lv, err := d.Likelihood(beta)
	require.NoError(t, err)
	require.Len(t, lv, 3)

	var logSum float64
	for _, v := range lv {
		require.Greater(t, v, 0.0)
		require.Less(t, v, 1.0)
		logSum += math.Log(v)
	}
	ll, err := d.LogLikelihood(beta)
	require.NoError(t, err)
	require.InDelta(t, ll, logSum, 1e-12)

	direct, err := likelihood.Likelihood([]float64{1, 0}, []float64{0.8, 0.25})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.8, 0.75}, direct, 1e-15)
}

func TestLogLikelihood_GuardsLogZero(t *testing.T) {
	ll, err := likelihood.LogLikelihood([]float64{0, 1}, []float64{1, 0})
	require.NoError(t, err)
	require.False(t, math.IsInf(ll, 0))
	require.False(t, math.IsNaN(ll))
	require.Less(t, ll, -60.0)
}

func TestData_SeparableTailsStayFinite(t *testing.T) {
	y := []float64{0, 1}
	X := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	d, err := likelihood.NewData(y, X)
	require.NoError(t, err)

	ll, err := d.LogLikelihood([]float64{-500, 1000})
	require.NoError(t, err)
	require.False(t, math.IsInf(ll, 0))
	require.LessOrEqual(t, ll, 0.0)
	require.InDelta(t, 0.0, ll, 1e-12)
}

func TestData_Gradient(t *testing.T) {
	y, X, beta := handBuilt()
	d, err := likelihood.NewData(y, X)
	require.NoError(t, err)
	p, err := d.Probabilities(beta)
	require.NoError(t, err)

	g, err := d.Gradient(beta, p)
	require.NoError(t, err)

	// Xᵀ(y − p) written out by hand
	want := make([]float64, 2)
	for i := range y {
		for j := 0; j < 2; j++ {
			want[j] += X.At(i, j) * (y[i] - p[i])
		}
	}
	require.InDeltaSlice(t, want, g, 1e-12)

	// the analytic gradient agrees with a central finite difference
	const h = 1e-6
	for j := range beta {
		up := append([]float64(nil), beta...)
		dn := append([]float64(nil), beta...)
		up[j] += h
		dn[j] -= h
		lu, err := d.LogLikelihood(up)
		require.NoError(t, err)
		ld, err := d.LogLikelihood(dn)
		require.NoError(t, err)
		require.InDelta(t, (lu-ld)/(2*h), g[j], 1e-6)
	}

	_, err = d.Gradient(beta, []float64{0.5})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestNewData_Errors(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 1, 1})

	_, err := likelihood.NewData([]float64{0, 1, 1}, X)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = likelihood.NewData([]float64{0, 2}, X)
	require.ErrorIs(t, err, likelihood.ErrDomain)

	_, err = likelihood.NewData([]float64{0, 0.5}, X)
	require.ErrorIs(t, err, likelihood.ErrDomain)

	_, err = likelihood.NewData([]float64{0, 1}, nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = likelihood.DataLogLikelihood([]float64{0, 1}, X, []float64{1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestLikelihood_ProbabilityDomain(t *testing.T) {
	_, err := likelihood.Likelihood([]float64{1}, []float64{1.5})
	require.ErrorIs(t, err, likelihood.ErrDomain)
	_, err = likelihood.LogLikelihood([]float64{1}, []float64{math.NaN()})
	require.ErrorIs(t, err, likelihood.ErrDomain)
	_, err = likelihood.LogLikelihood([]float64{1, 0}, []float64{0.5})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
