// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// FromRows builds an r×c Dense matrix from row slices, copying the data.
// Errors: ErrTooFewSamples when rows is empty, ErrDimensionMismatch on ragged
// or zero-width rows.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, linalgErrorf(opFromRows, ErrTooFewSamples)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, linalgErrorf(opFromRows, ErrDimensionMismatch)
	}
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, linalgErrorf(opFromRows, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), c, data), nil
}

// MatVec computes y = X·v for a column vector v.
//
// Contract: X non-nil with at least one row and column; len(v) == Cols(X).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(X mat.Matrix, v []float64) ([]float64, error) {
	r, c, err := dims(X)
	if err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(v, c); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	y := mat.NewVecDense(r, nil)
	y.MulVec(X, mat.NewVecDense(c, v))

	return y.RawVector().Data, nil
}

// TMatVec computes g = Xᵀ·v, the shape used by the score Xᵀ(y − p).
//
// Contract: X non-nil; len(v) == Rows(X).
// Complexity: Time O(r*c), Space O(c) for g.
func TMatVec(X mat.Matrix, v []float64) ([]float64, error) {
	r, c, err := dims(X)
	if err != nil {
		return nil, linalgErrorf(opTMatVec, err)
	}
	if err = ValidateVecLen(v, r); err != nil {
		return nil, linalgErrorf(opTMatVec, err)
	}
	g := mat.NewVecDense(c, nil)
	g.MulVec(X.T(), mat.NewVecDense(r, v))

	return g.RawVector().Data, nil
}

// dims returns the shape of a non-nil, non-empty matrix.
func dims(X mat.Matrix) (r, c int, err error) {
	if err = ValidateNotNil(X); err != nil {
		return 0, 0, err
	}
	r, c = X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, ErrDimensionMismatch
	}

	return r, c, nil
}
