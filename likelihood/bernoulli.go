// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/linalg"
	"github.com/katalvlaran/logitbayes/link"
)

// ValidateResponse checks that every y_i is exactly 0 or 1.
func ValidateResponse(y []float64) error {
	for i, v := range y {
		if v != 0 && v != 1 {
			return fmt.Errorf("likelihood: y[%d]=%g: %w", i, v, ErrDomain)
		}
	}

	return nil
}

// Likelihood returns the per-observation Bernoulli likelihood
// p_i^{y_i}·(1−p_i)^{1−y_i}.
//
// Errors: linalg.ErrDimensionMismatch (len(y) != len(p)), ErrDomain.
func Likelihood(y, p []float64) ([]float64, error) {
	if err := checkPair(y, p); err != nil {
		return nil, err
	}
	out := make([]float64, len(y))
	for i := range y {
		out[i] = math.Pow(p[i], y[i]) * math.Pow(1-p[i], 1-y[i])
	}

	return out, nil
}

// LogLikelihood returns Σ_i y_i·log p_i + (1−y_i)·log(1−p_i).
// Probabilities are clamped into [link.Epsilon, 1−link.Epsilon] first, so an
// exact 0 or 1 never produces log(0).
//
// Errors: linalg.ErrDimensionMismatch, ErrDomain.
func LogLikelihood(y, p []float64) (float64, error) {
	if err := checkPair(y, p); err != nil {
		return 0, err
	}
	var sum, pi float64
	for i := range y {
		pi = link.Clamp(p[i])
		sum += y[i]*math.Log(pi) + (1-y[i])*math.Log(1-pi)
	}

	return sum, nil
}

// checkPair validates aligned y/p vectors.
func checkPair(y, p []float64) error {
	if len(y) != len(p) {
		return fmt.Errorf("likelihood: len(y)=%d len(p)=%d: %w", len(y), len(p), linalg.ErrDimensionMismatch)
	}
	if err := ValidateResponse(y); err != nil {
		return err
	}
	for i, v := range p {
		if !(v >= 0 && v <= 1) { // also rejects NaN
			return fmt.Errorf("likelihood: p[%d]=%g: %w", i, v, ErrDomain)
		}
	}

	return nil
}

// DataLogLikelihood returns the Bernoulli log-likelihood of y given X and β.
// It is a one-shot convenience over NewData(y, X).LogLikelihood(beta).
func DataLogLikelihood(y []float64, X mat.Matrix, beta []float64) (float64, error) {
	d, err := NewData(y, X)
	if err != nil {
		return 0, err
	}

	return d.LogLikelihood(beta)
}

// Data binds an observed response vector to its design matrix.
// It is read-only after construction and safe to share between runs.
type Data struct {
	y    []float64  // private copy of the responses
	x    mat.Matrix // design matrix (caller-owned, never written)
	n, p int        // rows and columns of x
}

// NewData validates the shapes of (y, X) and the {0,1} domain of y.
//
// Errors: linalg.ErrNilMatrix, linalg.ErrDimensionMismatch, ErrDomain.
func NewData(y []float64, X mat.Matrix) (*Data, error) {
	if err := linalg.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("likelihood: %w", err)
	}
	n, p := X.Dims()
	if n == 0 || p == 0 {
		return nil, fmt.Errorf("likelihood: X is %dx%d: %w", n, p, linalg.ErrDimensionMismatch)
	}
	if len(y) != n {
		return nil, fmt.Errorf("likelihood: len(y)=%d rows(X)=%d: %w", len(y), n, linalg.ErrDimensionMismatch)
	}
	if err := ValidateResponse(y); err != nil {
		return nil, err
	}

	return &Data{y: append([]float64(nil), y...), x: X, n: n, p: p}, nil
}

// N returns the number of observations.
func (d *Data) N() int { return d.n }

// P returns the number of coefficients (columns of X, intercept included).
func (d *Data) P() int { return d.p }

// X returns the bound design matrix.
func (d *Data) X() mat.Matrix { return d.x }

// Probabilities returns p = σ(Xβ).
func (d *Data) Probabilities(beta []float64) ([]float64, error) {
	return link.Sigmoid(d.x, beta)
}

// Likelihood returns the per-observation likelihood vector at beta.
func (d *Data) Likelihood(beta []float64) ([]float64, error) {
	p, err := d.Probabilities(beta)
	if err != nil {
		return nil, err
	}

	return Likelihood(d.y, p)
}

// LogLikelihood returns Σ_i y_i·log σ(z_i) + (1−y_i)·log σ(−z_i) with z = Xβ.
// Evaluating from z keeps the result finite even when σ(z) rounds to 0 or 1.
func (d *Data) LogLikelihood(beta []float64) (float64, error) {
	z, err := link.LinearPredictor(d.x, beta)
	if err != nil {
		return 0, err
	}
	terms := make([]float64, d.n)
	for i, zi := range z {
		if d.y[i] == 1 {
			terms[i] = link.LogLogistic(zi)
		} else {
			terms[i] = link.LogLogistic(-zi)
		}
	}

	return floats.Sum(terms), nil
}

// Gradient returns ∂ℓ/∂β = Xᵀ(y − p) for probabilities p already evaluated
// at beta. beta is accepted for capability symmetry with the prior gradient.
func (d *Data) Gradient(_ []float64, p []float64) ([]float64, error) {
	if err := linalg.ValidateVecLen(p, d.n); err != nil {
		return nil, fmt.Errorf("likelihood: %w", err)
	}
	resid := floats.SubTo(make([]float64, d.n), d.y, p)
	g, err := linalg.TMatVec(d.x, resid)
	if err != nil {
		return nil, fmt.Errorf("likelihood: %w", err)
	}

	return g, nil
}
