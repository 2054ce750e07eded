// SPDX-License-Identifier: MIT
package mcmc_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/logitbayes/mcmc"
)

func BenchmarkSampler_Run_10k(b *testing.B) {
	s := newSampler(b, mcmc.Options{NumIterations: 10000, NumBurnIn: 1000}, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Run(mcmc.NewSource(uint64(i + 1)))
	}
}

func BenchmarkSampler_RunChains_4x2500(b *testing.B) {
	s := newSampler(b, mcmc.Options{NumIterations: 2500, NumBurnIn: 250}, nil)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.RunChains(ctx, 4, 0)
	}
}
