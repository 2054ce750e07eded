// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/katalvlaran/logitbayes/linalg"
)

// Prior is a multivariate-normal prior N(μ, Σ) with Σ factored once.
// It is read-only after construction and safe to share between runs.
type Prior struct {
	mu  []float64
	cov *linalg.SPD
}

// NewPrior validates μ and Σ and factors Σ.
//
// Errors:
//   - linalg.ErrNilMatrix, linalg.ErrNonSquare, linalg.ErrAsymmetry: Σ shape.
//   - linalg.ErrSingular: Σ not positive-definite.
//   - linalg.ErrDimensionMismatch: len(μ) != dim Σ.
//   - linalg.ErrNaNInf: non-finite μ or Σ.
func NewPrior(mu []float64, sigma mat.Matrix) (*Prior, error) {
	cov, err := linalg.FactorizeSPD(sigma)
	if err != nil {
		return nil, fmt.Errorf("likelihood: prior covariance: %w", err)
	}
	if err = linalg.ValidateVecLen(mu, cov.Dim()); err != nil {
		return nil, fmt.Errorf("likelihood: prior mean: %w", err)
	}
	if err = linalg.ValidateFinite(mu); err != nil {
		return nil, fmt.Errorf("likelihood: prior mean: %w", err)
	}

	return &Prior{mu: append([]float64(nil), mu...), cov: cov}, nil
}

// Dim returns k, the dimension of the prior.
func (pr *Prior) Dim() int { return len(pr.mu) }

// Mean returns a copy of μ.
func (pr *Prior) Mean() []float64 { return append([]float64(nil), pr.mu...) }

// Covariance returns the factored Σ.
func (pr *Prior) Covariance() *linalg.SPD { return pr.cov }

// LogLikelihood returns log N(x; μ, Σ).
//
// Errors: linalg.ErrDimensionMismatch (len(x) != k), linalg.ErrNaNInf (non-finite
// x), linalg.ErrSingular when Σ is too ill-conditioned to solve against.
func (pr *Prior) LogLikelihood(x []float64) (float64, error) {
	if err := linalg.ValidateVecLen(x, pr.Dim()); err != nil {
		return 0, fmt.Errorf("likelihood: %w", err)
	}
	if err := linalg.ValidateFinite(x); err != nil {
		return 0, fmt.Errorf("likelihood: %w", err)
	}
	lp := distmv.NormalLogProb(x, pr.mu, pr.cov.Cholesky())
	if math.IsNaN(lp) {
		return 0, fmt.Errorf("likelihood: prior log-density: %w", linalg.ErrSingular)
	}

	return lp, nil
}

// Gradient returns ∇ₓ log N(x; μ, Σ) = −Σ⁻¹(x − μ).
func (pr *Prior) Gradient(x []float64) ([]float64, error) {
	if err := linalg.ValidateVecLen(x, pr.Dim()); err != nil {
		return nil, fmt.Errorf("likelihood: %w", err)
	}
	diff := floats.SubTo(make([]float64, len(x)), x, pr.mu)
	g, err := pr.cov.SolveVec(diff)
	if err != nil {
		return nil, fmt.Errorf("likelihood: prior gradient: %w", err)
	}
	floats.Scale(-1, g)

	return g, nil
}

// PriorLogLikelihood returns log N(x; μ, Σ) for a single evaluation.
// Repeated evaluations against the same (μ, Σ) should build a Prior once.
func PriorLogLikelihood(x, mu []float64, sigma mat.Matrix) (float64, error) {
	pr, err := NewPrior(mu, sigma)
	if err != nil {
		return 0, err
	}

	return pr.LogLikelihood(x)
}
