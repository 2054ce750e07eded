// Package likelihood provides the log-likelihood primitives shared by the
// optimizers and the sampler.
//
// Two families are provided:
//
//   - Bernoulli data term (Data, Likelihood, LogLikelihood, DataLogLikelihood):
//     Σ_i y_i·log p_i + (1−y_i)·log(1−p_i) with p = σ(Xβ).
//   - Multivariate-normal prior term (Prior, PriorLogLikelihood):
//     −(k/2)·log 2π − ½·log det Σ − ½·(x−μ)ᵀ Σ⁻¹ (x−μ).
//
// Both satisfy the LogLikelihoodFunc capability, and Sum composes them into a
// posterior (data + prior). Each family also exposes its gradient with respect
// to β, which the gradient-ascent estimators consume.
//
// Errors:
//   - ErrDomain: y outside {0,1} or a probability outside [0,1].
//   - linalg.ErrDimensionMismatch / linalg.ErrNilMatrix: shape violations.
//   - linalg.ErrSingular: prior covariance not positive-definite.
package likelihood
