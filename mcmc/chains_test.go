// SPDX-License-Identifier: MIT
package mcmc_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/logitbayes/linalg"
	"github.com/katalvlaran/logitbayes/mcmc"
)

func TestRunChains_DeterministicPerStream(t *testing.T) {
	s := newSampler(t, mcmc.Options{NumIterations: 300, NumBurnIn: 50, Seed: 17}, nil)

	chains, err := s.RunChains(context.Background(), 4, 2)
	require.NoError(t, err)
	require.Len(t, chains, 4)

	for k, c := range chains {
		ref, err := s.Run(mcmc.DeriveSource(17, uint64(k)))
		require.NoError(t, err)
		require.Equal(t, ref.Samples, c.Samples, "chain %d", k)
	}
	require.NotEqual(t, chains[0].Samples, chains[1].Samples)

	again, err := s.RunChains(context.Background(), 4, 0)
	require.NoError(t, err)
	for k := range chains {
		require.Equal(t, chains[k].Samples, again[k].Samples)
	}
}

func TestRunChains_Errors(t *testing.T) {
	s := newSampler(t, mcmc.Options{NumIterations: 10}, nil)
	_, err := s.RunChains(context.Background(), 0, 0)
	require.ErrorIs(t, err, mcmc.ErrTooFewChains)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.RunChains(ctx, 3, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGelmanRubin_HandComputed(t *testing.T) {
	// means 1 and 2, within variances 2 and 2:
	// W = 2, B = 2·0.5 = 1, V = ½·2 + ½·1 = 1.5, R̂ = sqrt(0.75)
	chains := []mcmc.Chain{
		{Valid: [][]float64{{0, 5}, {2, 7}}},
		{Valid: [][]float64{{1, 5}, {3, 7}}},
	}
	r, err := mcmc.GelmanRubin(chains)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(0.75), r[0], 1e-15)
	// identical chains: B = 0, R̂ = sqrt((n−1)/n)
	require.InDelta(t, math.Sqrt(0.5), r[1], 1e-15)
}

func TestGelmanRubin_MixedChainsNearOne(t *testing.T) {
	s := newSampler(t, mcmc.Options{NumIterations: 5000, NumBurnIn: 500, Seed: 99}, nil)
	chains, err := s.RunChains(context.Background(), 4, 0)
	require.NoError(t, err)

	r, err := mcmc.GelmanRubin(chains)
	require.NoError(t, err)
	require.Len(t, r, 2)
	for _, v := range r {
		require.Less(t, v, 1.1)
		require.Greater(t, v, 0.9)
	}
}

func TestGelmanRubin_Errors(t *testing.T) {
	one := mcmc.Chain{Valid: [][]float64{{0}, {1}}}
	_, err := mcmc.GelmanRubin([]mcmc.Chain{one})
	require.ErrorIs(t, err, mcmc.ErrTooFewChains)

	short := mcmc.Chain{Valid: [][]float64{{0}}}
	_, err = mcmc.GelmanRubin([]mcmc.Chain{short, short})
	require.ErrorIs(t, err, linalg.ErrTooFewSamples)

	long := mcmc.Chain{Valid: [][]float64{{0}, {1}, {2}}}
	_, err = mcmc.GelmanRubin([]mcmc.Chain{one, long})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	wide := mcmc.Chain{Valid: [][]float64{{0, 1}, {1, 1}}}
	_, err = mcmc.GelmanRubin([]mcmc.Chain{one, wide})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
