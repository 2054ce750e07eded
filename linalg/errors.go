// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All routines MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No routine panics on
// user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and grep-ability.
// Routines wrap with fmt.Errorf("<Op>: %w", ErrX); callers still use errors.Is.

var (
	// ErrNilMatrix indicates that a nil matrix or vector argument was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(β) != X.Cols or len(y) != X.Rows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("linalg: matrix is not symmetric within tolerance")

	// ErrSingular is returned when a matrix required to be positive-definite is
	// not (det ≤ 0, not invertible, or numerically ill-conditioned).
	ErrSingular = errors.New("linalg: matrix is singular or not positive-definite")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrTooFewSamples indicates an empty sample set passed to a statistic.
	ErrTooFewSamples = errors.New("linalg: too few samples")
)

// Operation tags used by linalgErrorf (no magic strings at call sites).
const (
	opMatVec     = "MatVec"
	opTMatVec    = "TMatVec"
	opFactorize  = "FactorizeSPD"
	opInverse    = "Inverse"
	opSolve      = "SolveVec"
	opFromRows   = "FromRows"
	opMeans      = "ColumnMeans"
	opCovariance = "Covariance"
)

// linalgErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
