// SPDX-License-Identifier: MIT

// Package linalg - sample statistics over rows-as-observations.
//
// Purpose:
//   - Summarize a Markov chain (one sample per row) by its empirical mean vector
//     and empirical sample covariance matrix (denominator N−1).
//
// Determinism:
//   - Fixed accumulation order; no randomness.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnMeans returns the per-column mean of rows.
//
// Errors: ErrTooFewSamples (no rows), ErrDimensionMismatch (ragged rows).
// Complexity: Time O(r*c), Space O(r*c) for the transposed copy.
func ColumnMeans(rows [][]float64) ([]float64, error) {
	X, err := FromRows(rows)
	if err != nil {
		return nil, linalgErrorf(opMeans, err)
	}
	_, c := X.Dims()
	means := make([]float64, c)
	col := make([]float64, len(rows)) // reused column buffer
	var j int
	for j = 0; j < c; j++ {
		mat.Col(col, j, X)
		means[j] = stat.Mean(col, nil)
	}

	return means, nil
}

// Covariance returns the c×c sample covariance of rows (columns are dimensions).
//
// Behavior highlights:
//   - Denominator N−1.
//   - A single observation has undefined sample covariance: every entry is NaN.
//
// Errors: ErrTooFewSamples (no rows), ErrDimensionMismatch (ragged rows).
// Complexity: Time O(r*c²), Space O(c²).
func Covariance(rows [][]float64) (*mat.SymDense, error) {
	X, err := FromRows(rows)
	if err != nil {
		return nil, linalgErrorf(opCovariance, err)
	}
	r, c := X.Dims()
	cov := mat.NewSymDense(c, nil)
	if r < 2 {
		var i, j int
		for i = 0; i < c; i++ {
			for j = i; j < c; j++ {
				cov.SetSym(i, j, math.NaN())
			}
		}
		return cov, nil
	}
	stat.CovarianceMatrix(cov, X, nil)

	return cov, nil
}
