// SPDX-License-Identifier: MIT

package mcmc

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the mcmc package.
var (
	// ErrInvalidOptions indicates an Options value that fails Validate.
	ErrInvalidOptions = errors.New("mcmc: invalid options")

	// ErrTooFewChains indicates a chain count below what the operation
	// needs: one for RunChains, two for GelmanRubin.
	ErrTooFewChains = errors.New("mcmc: too few chains")
)

// Default option values.
const (
	DefaultNumIterations = 10000
	DefaultNumBurnIn     = 1000
)

// StepFunc observes one completed transition: the zero-based transition
// index, the state appended to the chain, whether the candidate was accepted
// and the acceptance probability a.
// state is owned by the chain and must not be modified.
type StepFunc func(i int, state []float64, accepted bool, acceptance float64)

// Options configures a sampler run.
//
// NumIterations – number of transitions (≥ 0); the chain holds NumIterations+1 states.
// NumBurnIn     – leading states dropped before summarizing (0 ≤ NumBurnIn ≤ NumIterations).
// Seed          – seed for NewSource when Run is given a nil source (0 ⇒ fixed default).
// OnStep        – optional hook called after every transition.
type Options struct {
	NumIterations int
	NumBurnIn     int
	Seed          uint64
	OnStep        StepFunc
}

// DefaultOptions returns NumIterations=10000, NumBurnIn=1000, Seed=0, no hook.
func DefaultOptions() Options {
	return Options{
		NumIterations: DefaultNumIterations,
		NumBurnIn:     DefaultNumBurnIn,
	}
}

// Validate reports the first inconsistent field, wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	if o.NumIterations < 0 {
		return fmt.Errorf("%w: NumIterations=%d must be ≥ 0", ErrInvalidOptions, o.NumIterations)
	}
	if o.NumBurnIn < 0 || o.NumBurnIn > o.NumIterations {
		return fmt.Errorf("%w: NumBurnIn=%d must be in [0, NumIterations=%d]",
			ErrInvalidOptions, o.NumBurnIn, o.NumIterations)
	}

	return nil
}

// Chain is the output of one sampler run.
type Chain struct {
	// Samples is the full chain, start point first; every row is its own slice.
	Samples [][]float64

	// Valid is Samples[NumBurnIn:].
	Valid [][]float64

	// Mean is the per-coordinate mean of Valid.
	Mean []float64

	// Covariance is the sample covariance of Valid (denominator N−1).
	// With a single valid state every entry is NaN.
	Covariance *mat.SymDense

	// Accepted counts accepted candidates.
	Accepted int

	// AcceptanceRate is Accepted/NumIterations, 0 for an empty run.
	AcceptanceRate float64
}
