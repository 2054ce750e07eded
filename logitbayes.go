// SPDX-License-Identifier: MIT

package logitbayes

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/estimation"
	"github.com/katalvlaran/logitbayes/mcmc"
)

// EstimateMLE fits β by maximum likelihood with fixed-step gradient ascent
// from β = 0.
//
// On ErrNotConverged the returned Result still holds the last iterate.
//
// Errors: estimation.ErrInvalidOptions, estimation.ErrNotConverged,
// estimation.ErrDiverged, linalg shape errors, likelihood.ErrDomain.
func EstimateMLE(
	y []float64,
	X mat.Matrix,
	maxIterations int,
	tolerance, learningRate float64,
) (estimation.Result, error) {
	return estimation.EstimateMLE(y, X, estimation.Options{
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
		LearningRate:  learningRate,
	})
}

// EstimateMAP fits β by maximum a posteriori under the prior
// N(priorMean, priorSigma).
//
// Errors: those of EstimateMLE plus linalg.ErrSingular, linalg.ErrAsymmetry
// and linalg.ErrNonSquare for priorSigma.
func EstimateMAP(
	y []float64,
	X mat.Matrix,
	priorMean []float64,
	priorSigma mat.Matrix,
	maxIterations int,
	tolerance, learningRate float64,
) (estimation.Result, error) {
	return estimation.EstimateMAP(y, X, priorMean, priorSigma, estimation.Options{
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
		LearningRate:  learningRate,
	})
}

// SampleMetropolis runs one random-walk Metropolis chain of numIterations
// transitions from start, drops numBurnIn leading states and summarizes the
// rest. The run is reproducible for a given seed; seed 0 selects a fixed
// default stream. A zero proposalSigma yields the start point replicated.
//
// Errors: mcmc.ErrInvalidOptions, linalg shape and singularity errors,
// likelihood.ErrDomain.
func SampleMetropolis(
	y []float64,
	X mat.Matrix,
	start, priorMean []float64,
	priorSigma, proposalSigma mat.Matrix,
	numIterations, numBurnIn int,
	seed uint64,
) (mcmc.Chain, error) {
	return mcmc.SampleMetropolis(y, X, start, priorMean, priorSigma, proposalSigma,
		numIterations, numBurnIn, mcmc.NewSource(seed))
}
