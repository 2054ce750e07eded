// SPDX-License-Identifier: MIT

package estimation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/linalg"
	"github.com/katalvlaran/logitbayes/link"
)

// Ascend climbs obj from β = 0 with a fixed step until the objective change
// falls below opts.Tolerance or opts.MaxIterations steps have run.
// X supplies the linear predictor for p = σ(Xβ); it must be the design matrix
// obj was built over.
//
// Implementation:
//   - Stage 1: validate options and shapes; β ← 0, p ← σ(X·0) = ½, ℓ_prev ← obj(0).
//   - Stage 2: per step: g ← obj.Gradient(β, p); β ← β + α·g; p ← σ(Xβ);
//     ℓ_new ← obj(β); stop if |ℓ_new − ℓ_prev| < τ.
//   - Stage 3: on exhaustion, return the last state with ErrNotConverged.
//
// Errors:
//   - ErrInvalidOptions, ErrNilObjective, linalg.ErrNilMatrix,
//     linalg.ErrDimensionMismatch (from the objective or link, or a gradient
//     whose length differs from Cols(X)).
//   - ErrNotConverged: Result holds the last iterate, Converged == false.
//   - ErrDiverged: β or the objective left the finite range; Result holds the
//     last finite iterate.
//
// Complexity:
//   - Time O(MaxIterations · cost(obj)), Space O(n + p + MaxIterations) for the trace.
func Ascend(obj Objective, X mat.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if obj == nil {
		return Result{}, ErrNilObjective
	}
	if err := linalg.ValidateNotNil(X); err != nil {
		return Result{}, fmt.Errorf("estimation: %w", err)
	}

	_, cols := X.Dims()
	beta := make([]float64, cols)
	p, err := link.Sigmoid(X, beta)
	if err != nil {
		return Result{}, fmt.Errorf("estimation: %w", err)
	}
	prev, err := obj.LogLikelihood(beta)
	if err != nil {
		return Result{}, fmt.Errorf("estimation: %w", err)
	}

	trace := make([]float64, 1, min(opts.MaxIterations, 1<<12)+1)
	trace[0] = prev

	// last finite state, reported on divergence
	lastBeta := make([]float64, cols)
	lastP := p

	var (
		i       int
		g       []float64
		nextP   []float64
		current float64
	)
	for i = 0; i < opts.MaxIterations; i++ {
		if g, err = obj.Gradient(beta, p); err != nil {
			return Result{}, fmt.Errorf("estimation: step %d: %w", i, err)
		}
		if err = linalg.ValidateVecLen(g, cols); err != nil {
			return Result{}, fmt.Errorf("estimation: step %d: gradient: %w", i, err)
		}
		floats.AddScaled(beta, opts.LearningRate, g)
		if floats.HasNaN(beta) || hasInf(beta) {
			return partial(lastBeta, lastP, prev, prev, i, trace),
				fmt.Errorf("estimation: step %d: non-finite coefficients: %w", i, ErrDiverged)
		}

		if nextP, err = link.Sigmoid(X, beta); err != nil {
			return Result{}, fmt.Errorf("estimation: step %d: %w", i, err)
		}
		if current, err = obj.LogLikelihood(beta); err != nil {
			return Result{}, fmt.Errorf("estimation: step %d: %w", i, err)
		}
		if math.IsNaN(current) || math.IsInf(current, 0) {
			return partial(lastBeta, lastP, prev, prev, i, trace),
				fmt.Errorf("estimation: step %d: objective %g: %w", i, current, ErrDiverged)
		}
		p = nextP
		trace = append(trace, current)
		if opts.OnIteration != nil {
			opts.OnIteration(i, beta, current)
		}

		if math.Abs(current-prev) < opts.Tolerance {
			return Result{
				Beta:                  beta,
				P:                     p,
				LogLikelihood:         current,
				PreviousLogLikelihood: prev,
				Iterations:            i,
				Trace:                 trace,
				Converged:             true,
			}, nil
		}

		copy(lastBeta, beta)
		lastP = p
		prev = current
	}

	// trace[len-2] is the objective before the last update (len ≥ 2 here).
	return partial(beta, p, prev, trace[len(trace)-2], opts.MaxIterations, trace),
		fmt.Errorf("estimation: %d iterations: %w", opts.MaxIterations, ErrNotConverged)
}

// partial assembles a non-converged Result from copies of the given state.
func partial(beta, p []float64, ll, prevLL float64, iterations int, trace []float64) Result {
	return Result{
		Beta:                  append([]float64(nil), beta...),
		P:                     append([]float64(nil), p...),
		LogLikelihood:         ll,
		PreviousLogLikelihood: prevLL,
		Iterations:            iterations,
		Trace:                 trace,
	}
}

func hasInf(x []float64) bool {
	for _, v := range x {
		if math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
