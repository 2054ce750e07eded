// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep estimators and samplers minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSymmetryTol is the absolute tolerance used when a covariance matrix
// supplied as a general mat.Matrix is checked for symmetry.
const DefaultSymmetryTol = 1e-12

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers of the gonum concrete types.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if isNilMatrix(m) {
		return linalgErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNilMatrix reports whether m is a nil interface or a typed nil of a known
// gonum concrete type (calling Dims on those would panic).
func isNilMatrix(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	case *mat.DiagDense:
		return v == nil
	case *mat.TriDense:
		return v == nil
	}

	return false
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != c {
		return linalgErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |A[i,j]−A[j,i]| ≤ tol for all i<j.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil + shape).
//   - Stage 2: reject non-finite tolerance, normalize negative tol to |tol|.
//   - Stage 3: scan the strict upper triangle in i→j order, failing fast.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m mat.Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return linalgErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	// A symmetric type is symmetric by construction.
	if _, ok := m.(mat.Symmetric); ok {
		return nil
	}

	n, _ := m.Dims()
	var i, j int // loop counters
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only the upper triangle
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return linalgErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return linalgErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return linalgErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects vectors holding NaN or ±Inf.
// Time: O(n). Space: O(1).
func ValidateFinite(x []float64) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return linalgErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// IsZero reports whether every entry of m is exactly zero.
// A zero proposal covariance is the degenerate "never move" random walk.
// Complexity: O(r*c).
func IsZero(m mat.Matrix) bool {
	if isNilMatrix(m) {
		return false
	}
	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}
