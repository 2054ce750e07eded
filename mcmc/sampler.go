// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/logitbayes/likelihood"
	"github.com/katalvlaran/logitbayes/linalg"
)

// Sampler is a random-walk Metropolis sampler over the logistic posterior.
// A Sampler is read-only after construction; each Run owns its own chain
// and random stream, so one Sampler may serve concurrent runs.
type Sampler struct {
	posterior likelihood.Sum
	start     []float64
	proposal  *linalg.SPD // nil for the degenerate zero proposal
	opts      Options
}

// NewSampler validates every input and factors the proposal covariance once.
//
// Implementation:
//   - Stage 1: opts.Validate.
//   - Stage 2: bind (y, X) and the prior N(μ, Σ); dimensions must agree with X.
//   - Stage 3: start must have length p and be finite.
//   - Stage 4: proposalSigma must be p×p and either exactly zero or SPD.
//
// Errors:
//   - ErrInvalidOptions.
//   - linalg.ErrNilMatrix, linalg.ErrDimensionMismatch, linalg.ErrNonSquare,
//     linalg.ErrAsymmetry, linalg.ErrSingular, linalg.ErrNaNInf.
//   - likelihood.ErrDomain.
func NewSampler(
	y []float64,
	X mat.Matrix,
	start, priorMean []float64,
	priorSigma, proposalSigma mat.Matrix,
	opts Options,
) (*Sampler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data, err := likelihood.NewData(y, X)
	if err != nil {
		return nil, fmt.Errorf("mcmc: %w", err)
	}
	prior, err := likelihood.NewPrior(priorMean, priorSigma)
	if err != nil {
		return nil, fmt.Errorf("mcmc: %w", err)
	}
	p := data.P()
	if prior.Dim() != p {
		return nil, fmt.Errorf("mcmc: prior dim %d, %d coefficients: %w", prior.Dim(), p, linalg.ErrDimensionMismatch)
	}

	if err = linalg.ValidateVecLen(start, p); err != nil {
		return nil, fmt.Errorf("mcmc: start: %w", err)
	}
	if err = linalg.ValidateFinite(start); err != nil {
		return nil, fmt.Errorf("mcmc: start: %w", err)
	}

	proposal, err := factorProposal(proposalSigma, p)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		posterior: likelihood.Sum{data, prior},
		start:     append([]float64(nil), start...),
		proposal:  proposal,
		opts:      opts,
	}, nil
}

// factorProposal returns nil for an exact zero p×p matrix, otherwise its SPD factor.
func factorProposal(m mat.Matrix, p int) (*linalg.SPD, error) {
	if err := linalg.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("mcmc: proposal: %w", err)
	}
	if r, _ := m.Dims(); r != p {
		return nil, fmt.Errorf("mcmc: proposal is %dx%d, want %dx%d: %w", r, r, p, p, linalg.ErrDimensionMismatch)
	}
	if linalg.IsZero(m) {
		return nil, nil
	}
	spd, err := linalg.FactorizeSPD(m)
	if err != nil {
		return nil, fmt.Errorf("mcmc: proposal: %w", err)
	}

	return spd, nil
}

// Options returns the run configuration bound at construction.
func (s *Sampler) Options() Options { return s.opts }

// Run draws one chain. A nil src uses NewSource(Options.Seed).
func (s *Sampler) Run(src rand.Source) (Chain, error) {
	return s.RunContext(context.Background(), src)
}

// RunContext is Run with cancellation checked before every transition.
//
// Errors: ctx.Err() on cancellation; log-posterior evaluation errors.
//
// Complexity: Time O(NumIterations·(n·p + p²)), Space O(NumIterations·p).
func (s *Sampler) RunContext(ctx context.Context, src rand.Source) (Chain, error) {
	if src == nil {
		src = NewSource(s.opts.Seed)
	}
	coin := distuv.Uniform{Min: 0, Max: 1, Src: src}

	n := s.opts.NumIterations
	samples := make([][]float64, 1, n+1)
	samples[0] = append([]float64(nil), s.start...)

	current := samples[0]
	cur, err := s.posterior.LogLikelihood(current)
	if err != nil {
		return Chain{}, fmt.Errorf("mcmc: start: %w", err)
	}

	var (
		i        int
		cand     float64
		a, u     float64
		accepted int
		ok       bool
		next     []float64
	)
	for i = 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			return Chain{}, fmt.Errorf("mcmc: transition %d: %w", i, err)
		}

		if s.proposal == nil {
			next = append([]float64(nil), current...)
			cand, a = cur, 1
		} else {
			next = distmv.NormalRand(nil, current, s.proposal.Cholesky(), src)
			if cand, err = s.posterior.LogLikelihood(next); err != nil {
				return Chain{}, fmt.Errorf("mcmc: transition %d: %w", i, err)
			}
			a = acceptance(cand - cur)
		}

		u = coin.Rand()
		ok = u <= a
		if ok {
			current, cur = next, cand
			accepted++
		} else {
			current = append([]float64(nil), current...)
		}
		samples = append(samples, current)

		if s.opts.OnStep != nil {
			s.opts.OnStep(i, current, ok, a)
		}
	}

	return summarize(samples, s.opts.NumBurnIn, accepted)
}

// acceptance returns min(1, exp(delta)); an undefined delta is never accepted.
func acceptance(delta float64) float64 {
	switch {
	case math.IsNaN(delta):
		return 0
	case delta >= 0:
		return 1
	default:
		return math.Exp(delta)
	}
}

// summarize slices off the burn-in and computes the chain statistics.
func summarize(samples [][]float64, burnIn, accepted int) (Chain, error) {
	valid := samples[burnIn:]
	mean, err := linalg.ColumnMeans(valid)
	if err != nil {
		return Chain{}, fmt.Errorf("mcmc: summary: %w", err)
	}
	cov, err := linalg.Covariance(valid)
	if err != nil {
		return Chain{}, fmt.Errorf("mcmc: summary: %w", err)
	}

	var rate float64
	if transitions := len(samples) - 1; transitions > 0 {
		rate = float64(accepted) / float64(transitions)
	}

	return Chain{
		Samples:        samples,
		Valid:          valid,
		Mean:           mean,
		Covariance:     cov,
		Accepted:       accepted,
		AcceptanceRate: rate,
	}, nil
}

// SampleMetropolis builds a Sampler and runs it once with src.
// A nil src uses the fixed default stream.
func SampleMetropolis(
	y []float64,
	X mat.Matrix,
	start, priorMean []float64,
	priorSigma, proposalSigma mat.Matrix,
	numIterations, numBurnIn int,
	src rand.Source,
) (Chain, error) {
	opts := Options{NumIterations: numIterations, NumBurnIn: numBurnIn}
	s, err := NewSampler(y, X, start, priorMean, priorSigma, proposalSigma, opts)
	if err != nil {
		return Chain{}, err
	}

	return s.Run(src)
}
