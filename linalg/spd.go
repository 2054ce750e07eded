// SPDX-License-Identifier: MIT

// Package linalg - symmetric positive-definite factorization.
//
// Purpose:
//   - Factor a covariance matrix once and reuse it for log-det, inverse and solves.
//   - Turn every "not positive-definite / not invertible" outcome into ErrSingular.
//
// Complexity quicksheet:
//   - FactorizeSPD: O(n³); LogDet: O(n); SolveVec: O(n²); Inverse: O(n³).

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SPD is an immutable Cholesky factorization Σ = UᵀU of a symmetric
// positive-definite matrix. The zero value is not usable; build it with
// FactorizeSPD.
type SPD struct {
	sym  *mat.SymDense // private copy of Σ
	chol mat.Cholesky  // upper Cholesky factor of sym
}

// FactorizeSPD validates m as a finite, square, symmetric matrix and computes
// its Cholesky factorization.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, DefaultSymmetryTol).
//   - Stage 2: copy into a private *mat.SymDense (upper triangle is authoritative).
//   - Stage 3: Cholesky; failure means det ≤ 0 or not invertible.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func FactorizeSPD(m mat.Matrix) (*SPD, error) {
	if err := ValidateSymmetric(m, DefaultSymmetryTol); err != nil {
		return nil, linalgErrorf(opFactorize, err)
	}

	n, _ := m.Dims()
	if n == 0 {
		return nil, linalgErrorf(opFactorize, ErrDimensionMismatch)
	}
	sym := mat.NewSymDense(n, nil)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, linalgErrorf(opFactorize, ErrNaNInf)
			}
			sym.SetSym(i, j, v)
		}
	}

	s := &SPD{sym: sym}
	if ok := s.chol.Factorize(sym); !ok {
		return nil, linalgErrorf(opFactorize, ErrSingular)
	}

	return s, nil
}

// Dim returns the dimension n of the n×n factored matrix.
func (s *SPD) Dim() int { return s.sym.SymmetricDim() }

// LogDet returns log(det Σ). Always finite for a successful factorization.
func (s *SPD) LogDet() float64 { return s.chol.LogDet() }

// Cholesky exposes the factorization for gonum routines that consume it
// (distmv.NormalLogProb, distmv.NormalRand). Callers must treat it as read-only.
func (s *SPD) Cholesky() *mat.Cholesky { return &s.chol }

// Sym returns a fresh copy of the factored matrix.
func (s *SPD) Sym() *mat.SymDense {
	out := mat.NewSymDense(s.Dim(), nil)
	out.CopySym(s.sym)

	return out
}

// Inverse returns Σ⁻¹ as a new symmetric matrix.
// Errors: ErrSingular when the factorization is numerically ill-conditioned.
// Complexity: O(n³).
func (s *SPD) Inverse() (*mat.SymDense, error) {
	var inv mat.SymDense
	if err := s.chol.InverseTo(&inv); err != nil {
		return nil, linalgErrorf(opInverse, ErrSingular)
	}

	return &inv, nil
}

// SolveVec returns x with Σx = b.
// Errors: ErrDimensionMismatch on len(b) != n; ErrSingular when ill-conditioned.
// Complexity: O(n²).
func (s *SPD) SolveVec(b []float64) ([]float64, error) {
	n := s.Dim()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	x := mat.NewVecDense(n, nil)
	if err := s.chol.SolveVecTo(x, mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		return nil, linalgErrorf(opSolve, ErrSingular)
	}

	return x.RawVector().Data, nil
}
