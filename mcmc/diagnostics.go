// SPDX-License-Identifier: MIT

package mcmc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/logitbayes/linalg"
)

// GelmanRubin returns the potential scale reduction factor R̂ for every
// coordinate, computed over the Valid samples of m ≥ 2 chains of equal
// length n ≥ 2:
//
//	W   = mean of within-chain variances
//	B   = n · variance of chain means
//	R̂   = sqrt(((n−1)/n·W + B/n) / W)
//
// Values near 1 indicate the chains agree. A coordinate with zero
// within-chain variance yields NaN (or +Inf when the chains disagree).
//
// Errors: ErrTooFewChains, linalg.ErrTooFewSamples, linalg.ErrDimensionMismatch.
//
// Complexity: O(m·n·p).
func GelmanRubin(chains []Chain) ([]float64, error) {
	m := len(chains)
	if m < 2 {
		return nil, fmt.Errorf("mcmc: %d chains: %w", m, ErrTooFewChains)
	}
	n := len(chains[0].Valid)
	if n < 2 {
		return nil, fmt.Errorf("mcmc: %d valid samples: %w", n, linalg.ErrTooFewSamples)
	}
	p := len(chains[0].Valid[0])

	var k, i, j int
	for k = 0; k < m; k++ {
		if len(chains[k].Valid) != n {
			return nil, fmt.Errorf("mcmc: chain %d has %d valid samples, want %d: %w",
				k, len(chains[k].Valid), n, linalg.ErrDimensionMismatch)
		}
		for i = 0; i < n; i++ {
			if len(chains[k].Valid[i]) != p {
				return nil, fmt.Errorf("mcmc: chain %d sample %d: %w", k, i, linalg.ErrDimensionMismatch)
			}
		}
	}

	rhat := make([]float64, p)
	col := make([]float64, n)
	means := make([]float64, m)
	vars := make([]float64, m)
	nf := float64(n)
	var w, b float64
	for j = 0; j < p; j++ {
		for k = 0; k < m; k++ {
			for i = 0; i < n; i++ {
				col[i] = chains[k].Valid[i][j]
			}
			means[k], vars[k] = stat.MeanVariance(col, nil)
		}
		w = stat.Mean(vars, nil)
		b = nf * stat.Variance(means, nil)
		rhat[j] = math.Sqrt(((nf-1)/nf*w + b/nf) / w)
	}

	return rhat, nil
}
