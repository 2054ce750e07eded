// SPDX-License-Identifier: MIT

package estimation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/likelihood"
	"github.com/katalvlaran/logitbayes/linalg"
)

// Estimator is the shared contract of the point-estimation strategies.
type Estimator interface {
	Estimate() (Result, error)
}

// Compile-time assertions for capability conformance.
var (
	_ Estimator = (*MLE)(nil)
	_ Estimator = (*MAP)(nil)
)

// MLE is a maximum-likelihood estimator bound to one dataset.
type MLE struct {
	data *likelihood.Data
	opts Options
}

// NewMLE validates y, X and opts and returns a reusable estimator.
//
// Errors: ErrInvalidOptions, linalg.ErrNilMatrix, linalg.ErrDimensionMismatch,
// likelihood.ErrDomain.
func NewMLE(y []float64, X mat.Matrix, opts Options) (*MLE, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, err := likelihood.NewData(y, X)
	if err != nil {
		return nil, fmt.Errorf("estimation: %w", err)
	}

	return &MLE{data: data, opts: opts}, nil
}

// Estimate runs the ascent from β = 0. Each call is an independent run.
func (m *MLE) Estimate() (Result, error) {
	return Ascend(NewMLEObjective(m.data), m.data.X(), m.opts)
}

// MAP is a maximum-a-posteriori estimator under a normal prior N(μ, Σ).
type MAP struct {
	data  *likelihood.Data
	prior *likelihood.Prior
	opts  Options
}

// NewMAP validates the inputs, factors Σ once and returns a reusable estimator.
//
// Errors: those of NewMLE, plus linalg.ErrNonSquare, linalg.ErrAsymmetry,
// linalg.ErrSingular and linalg.ErrDimensionMismatch for the prior.
func NewMAP(y []float64, X mat.Matrix, priorMean []float64, priorSigma mat.Matrix, opts Options) (*MAP, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, err := likelihood.NewData(y, X)
	if err != nil {
		return nil, fmt.Errorf("estimation: %w", err)
	}
	prior, err := likelihood.NewPrior(priorMean, priorSigma)
	if err != nil {
		return nil, fmt.Errorf("estimation: %w", err)
	}
	if prior.Dim() != data.P() {
		return nil, fmt.Errorf("estimation: prior dim %d, %d coefficients: %w",
			prior.Dim(), data.P(), linalg.ErrDimensionMismatch)
	}

	return &MAP{data: data, prior: prior, opts: opts}, nil
}

// Estimate runs the ascent from β = 0. Each call is an independent run.
func (m *MAP) Estimate() (Result, error) {
	return Ascend(NewMAPObjective(m.data, m.prior), m.data.X(), m.opts)
}

// EstimateMLE fits β by maximum likelihood in one call.
func EstimateMLE(y []float64, X mat.Matrix, opts Options) (Result, error) {
	m, err := NewMLE(y, X, opts)
	if err != nil {
		return Result{}, err
	}

	return m.Estimate()
}

// EstimateMAP fits β by maximum a posteriori under N(priorMean, priorSigma).
func EstimateMAP(y []float64, X mat.Matrix, priorMean []float64, priorSigma mat.Matrix, opts Options) (Result, error) {
	m, err := NewMAP(y, X, priorMean, priorSigma, opts)
	if err != nil {
		return Result{}, err
	}

	return m.Estimate()
}
