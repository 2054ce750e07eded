// Package link implements the logistic link function shared by every
// estimator and sampler in this module.
//
// Sigmoid maps a linear predictor Xβ to predicted probabilities
// p = 1 / (1 + exp(−Xβ)). Evaluation is branch-stable (no overflow for large
// |z|) and the output is clamped to [Epsilon, 1−Epsilon], so every probability
// lies strictly inside (0,1) and log-probabilities stay finite.
//
// LogLogistic evaluates log σ(z) directly from z; the data log-likelihood uses
// it so that a perfectly separable fit approaches 0 from below without ever
// producing −Inf.
package link
