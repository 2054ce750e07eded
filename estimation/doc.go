// SPDX-License-Identifier: MIT

// Package estimation fits logistic-regression coefficients by fixed-step
// gradient ascent on a log-likelihood surface.
//
// What:
//   - MLE maximizes the Bernoulli data log-likelihood ℓ(β).
//   - MAP maximizes ℓ(β) + log N(β; μ, Σ), the unnormalized log-posterior.
//   - Both share one driver, Ascend, parameterized by an Objective.
//
// Algorithm (per step i = 0, 1, …, MaxIterations−1):
//  1. g ← ∇objective(β)          (MLE: Xᵀ(y−p); MAP: Xᵀ(y−p) − Σ⁻¹(β−μ))
//  2. β ← β + α·g                (fixed step, no line search)
//  3. p ← σ(Xβ)
//  4. ℓ_new ← objective(β)
//  5. stop when |ℓ_new − ℓ_prev| < τ, else ℓ_prev ← ℓ_new
//
// Result semantics:
//   - Result.LogLikelihood is the objective at the returned β.
//   - Result.PreviousLogLikelihood is the objective before the final update,
//     kept for callers that relied on that value.
//   - Result.Iterations is the zero-based index of the converging step.
//   - Running out of iterations returns the last state together with
//     ErrNotConverged; a non-finite β or objective returns ErrDiverged.
//
// Determinism:
//   - No randomness; identical inputs give bit-identical results.
//
// Concurrency:
//   - Inputs are never mutated, so independent runs may share y, X, μ and Σ.
//
// Complexity (per step): O(n·p) for the data term, O(p²) for the MAP prior term.
package estimation
