// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunChains draws numChains independent chains concurrently. Chain k uses
// DeriveSource(Options.Seed, k), so the result is deterministic for a fixed
// seed regardless of scheduling. maxParallel ≤ 0 means no limit.
// The first failing chain cancels the others.
//
// Errors: ErrTooFewChains (numChains < 1), ctx.Err(), per-chain run errors.
func (s *Sampler) RunChains(ctx context.Context, numChains, maxParallel int) ([]Chain, error) {
	if numChains < 1 {
		return nil, fmt.Errorf("mcmc: numChains=%d: %w", numChains, ErrTooFewChains)
	}

	chains := make([]Chain, numChains)
	g, gctx := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		g.SetLimit(maxParallel)
	}
	for k := 0; k < numChains; k++ {
		k := k
		g.Go(func() error {
			c, err := s.RunContext(gctx, DeriveSource(s.opts.Seed, uint64(k)))
			if err != nil {
				return fmt.Errorf("mcmc: chain %d: %w", k, err)
			}
			chains[k] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chains, nil
}
