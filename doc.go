// Package logitbayes estimates logistic regression coefficients under two
// statistical paradigms and samples their posterior.
//
// What is inside?
//
//	A small, deterministic numerical engine built on gonum:
//		• Link function: branch-stable sigmoid (link)
//		• Likelihoods: Bernoulli data term and multivariate-normal prior (likelihood)
//		• Point estimates: gradient-ascent MLE and MAP (estimation)
//		• Posterior sampling: random-walk Metropolis with a seedable source (mcmc)
//		• Shared numerics: SPD factorization, log-det, sample covariance (linalg)
//
// Guarantees:
//
//   - Caller-owned inputs (y, X, μ, Σ, proposal covariance) are never mutated.
//   - Every run starts from a fresh state; nothing is kept across calls.
//   - Given the same seed, the sampler reproduces the same chain bit for bit.
//   - Errors are package sentinels matched with errors.Is; user input never panics.
//
// Layout:
//
//	linalg/      validators, SPD factorization, MatVec/TMatVec, covariance
//	link/        Logistic, LogLogistic, Sigmoid(X, β)
//	likelihood/  Likelihood, LogLikelihood, DataLogLikelihood, PriorLogLikelihood
//	estimation/  Ascend driver, MLE and MAP objectives, Result
//	mcmc/        Metropolis sampler, Chain summary, NewSource, RunChains, GelmanRubin
//	examples/    runnable scenarios (go run ./examples)
//
// The design matrix X must already carry the intercept column of ones at
// position 0, and y must be aligned with the rows of X.
//
// Quick start:
//
//	res, err := logitbayes.EstimateMLE(y, X, 1000, 1e-6, 0.1)
//	if errors.Is(err, estimation.ErrNotConverged) {
//		// res still holds the last iterate
//	}
package logitbayes
