// Package linalg provides the shared numerical utilities of the estimation
// engine, layered over gonum/mat.
//
// The linalg package provides:
//
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateVecLen, ValidateFinite) returning package sentinels.
//   - SPD, a Cholesky-backed factorization of a symmetric positive-definite
//     matrix exposing LogDet, Inverse and SolveVec.
//   - MatVec / TMatVec products with strict shape checks.
//   - ColumnMeans and Covariance over rows-as-observations (sample covariance,
//     denominator N−1), used to summarize Markov chains.
//
// All functions are pure: inputs are never mutated and results are freshly
// allocated. Failures are reported with sentinels wrapped by an operation tag,
// so callers match them with errors.Is.
package linalg
