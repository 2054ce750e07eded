// SPDX-License-Identifier: MIT

// Package mcmc draws posterior samples of logistic-regression coefficients
// with a random-walk Metropolis sampler.
//
// Target:
//
//	log π(β) = ℓ(β) + log N(β; μ, Σ)      (unnormalized log-posterior)
//
// Transition (repeated NumIterations times from the caller's start point):
//  1. cur  ← log π(current)
//  2. cand ~ N(current, Σ_prop)          (symmetric proposal)
//  3. a    ← min(1, exp(log π(cand) − cur))
//  4. u    ~ U(0,1); next ← cand if u ≤ a, else a copy of current
//
// The chain always grows by exactly one state per transition, so
// len(Chain.Samples) == NumIterations+1. Chain.Valid drops the first
// NumBurnIn states and Chain.Mean / Chain.Covariance summarize it
// (sample covariance, denominator N−1).
//
// Degenerate proposal:
//   - An exact zero Σ_prop never moves: the candidate equals the current state,
//     a = 1, and the chain replicates the start point. The coin is still drawn.
//
// Randomness:
//   - All draws (proposal normals and acceptance coins) come from one
//     rand.Source per run. NewSource(seed) is deterministic; seed 0 selects a
//     fixed default, so equal seeds give bit-identical chains.
//   - A rand.Source is not goroutine-safe. RunChains derives one independent
//     stream per chain with DeriveSource.
//
// Diagnostics:
//   - GelmanRubin computes the potential scale reduction factor R̂ per
//     coordinate across independent chains.
package mcmc
