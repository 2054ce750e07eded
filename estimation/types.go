// SPDX-License-Identifier: MIT

package estimation

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the estimation package.
var (
	// ErrInvalidOptions indicates an Options value that fails Validate.
	ErrInvalidOptions = errors.New("estimation: invalid options")

	// ErrNotConverged indicates that MaxIterations steps ran without the
	// objective change dropping below Tolerance. The accompanying Result
	// still holds the last iterate.
	ErrNotConverged = errors.New("estimation: did not converge")

	// ErrDiverged indicates that β or the objective became NaN or ±Inf,
	// usually because LearningRate is too large for the curvature.
	ErrDiverged = errors.New("estimation: diverged")

	// ErrNilObjective indicates that Ascend received a nil Objective.
	ErrNilObjective = errors.New("estimation: nil objective")
)

// Default option values.
const (
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-6
	DefaultLearningRate  = 0.01
)

// IterationFunc observes one completed ascent step: the zero-based step
// index, the updated coefficients and the objective at them.
// beta is owned by the driver and must not be retained or modified.
type IterationFunc func(i int, beta []float64, logLikelihood float64)

// Options configures the gradient-ascent driver.
//
// MaxIterations – cap on ascent steps (≥ 1).
// Tolerance     – stop once |Δ objective| < Tolerance (> 0, finite).
// LearningRate  – fixed step size α (> 0, finite).
// OnIteration   – optional hook called after every step.
type Options struct {
	MaxIterations int
	Tolerance     float64
	LearningRate  float64
	OnIteration   IterationFunc
}

// DefaultOptions returns Options with MaxIterations=1000, Tolerance=1e-6,
// LearningRate=0.01 and no hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		LearningRate:  DefaultLearningRate,
	}
}

// Validate reports the first inconsistent field, wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations=%d must be ≥ 1", ErrInvalidOptions, o.MaxIterations)
	}
	if !positiveFinite(o.Tolerance) {
		return fmt.Errorf("%w: Tolerance=%g must be positive and finite", ErrInvalidOptions, o.Tolerance)
	}
	if !positiveFinite(o.LearningRate) {
		return fmt.Errorf("%w: LearningRate=%g must be positive and finite", ErrInvalidOptions, o.LearningRate)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Result is the outcome of one ascent run.
type Result struct {
	// Beta holds the fitted coefficients (length p, intercept first).
	Beta []float64

	// P holds σ(X·Beta), every entry strictly inside (0,1).
	P []float64

	// LogLikelihood is the objective evaluated at Beta.
	LogLikelihood float64

	// PreviousLogLikelihood is the objective before the final update.
	// On convergence it differs from LogLikelihood by less than Tolerance.
	PreviousLogLikelihood float64

	// Iterations is the zero-based index of the converging step, or
	// MaxIterations when the run did not converge.
	Iterations int

	// Trace is the objective at the zero start followed by its value after
	// every update: len(Trace) == number of steps taken + 1.
	Trace []float64

	// Converged reports whether the tolerance test was met.
	Converged bool
}
