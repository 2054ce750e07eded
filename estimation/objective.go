// SPDX-License-Identifier: MIT

package estimation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/logitbayes/likelihood"
)

// Objective is the surface climbed by Ascend: a scalar log-likelihood and its
// gradient. p is σ(Xβ) already computed by the driver for the same β.
type Objective interface {
	likelihood.LogLikelihoodFunc
	Gradient(beta, p []float64) ([]float64, error)
}

// Compile-time assertions for capability conformance.
var (
	_ Objective = (*mleObjective)(nil)
	_ Objective = (*mapObjective)(nil)
)

// mleObjective is the data log-likelihood alone.
type mleObjective struct {
	data *likelihood.Data
}

// NewMLEObjective returns the maximum-likelihood objective over data.
func NewMLEObjective(data *likelihood.Data) Objective {
	return &mleObjective{data: data}
}

func (o *mleObjective) LogLikelihood(beta []float64) (float64, error) {
	return o.data.LogLikelihood(beta)
}

func (o *mleObjective) Gradient(beta, p []float64) ([]float64, error) {
	return o.data.Gradient(beta, p)
}

// mapObjective is the data log-likelihood plus a normal log-prior.
type mapObjective struct {
	data  *likelihood.Data
	prior *likelihood.Prior
	sum   likelihood.Sum
}

// NewMAPObjective returns the maximum-a-posteriori objective
// ℓ(β) + log N(β; μ, Σ).
func NewMAPObjective(data *likelihood.Data, prior *likelihood.Prior) Objective {
	return &mapObjective{data: data, prior: prior, sum: likelihood.Sum{data, prior}}
}

func (o *mapObjective) LogLikelihood(beta []float64) (float64, error) {
	return o.sum.LogLikelihood(beta)
}

// Gradient returns Xᵀ(y−p) − Σ⁻¹(β−μ).
func (o *mapObjective) Gradient(beta, p []float64) ([]float64, error) {
	g, err := o.data.Gradient(beta, p)
	if err != nil {
		return nil, err
	}
	gp, err := o.prior.Gradient(beta)
	if err != nil {
		return nil, fmt.Errorf("estimation: %w", err)
	}
	floats.Add(g, gp)

	return g, nil
}
