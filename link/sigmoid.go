// SPDX-License-Identifier: MIT

package link

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/linalg"
)

// Epsilon bounds predicted probabilities away from exact 0 and 1.
const Epsilon = 1e-15

// Logistic returns σ(z) = 1/(1+e^{−z}) without overflow.
// For z < 0 it uses e^{z}/(1+e^{z}) so exp never sees a large positive argument.
func Logistic(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)

	return e / (1 + e)
}

// LogLogistic returns log σ(z) computed stably:
//
//	z ≥ 0: −log1p(e^{−z})
//	z < 0:  z − log1p(e^{z})
//
// Note log(1−σ(z)) = LogLogistic(−z).
func LogLogistic(z float64) float64 {
	if z >= 0 {
		return -math.Log1p(math.Exp(-z))
	}

	return z - math.Log1p(math.Exp(z))
}

// Clamp bounds a probability into [Epsilon, 1−Epsilon].
func Clamp(p float64) float64 {
	switch {
	case p < Epsilon:
		return Epsilon
	case p > 1-Epsilon:
		return 1 - Epsilon
	}

	return p
}

// Sigmoid returns the predicted probability vector p = σ(Xβ) of length Rows(X).
//
// Contract: X non-nil; len(beta) == Cols(X). X and beta are not mutated.
// Errors: linalg.ErrNilMatrix, linalg.ErrDimensionMismatch.
// Complexity: O(n·p).
func Sigmoid(X mat.Matrix, beta []float64) ([]float64, error) {
	z, err := LinearPredictor(X, beta)
	if err != nil {
		return nil, err
	}
	for i, zi := range z {
		z[i] = Clamp(Logistic(zi))
	}

	return z, nil
}

// LinearPredictor returns Xβ.
func LinearPredictor(X mat.Matrix, beta []float64) ([]float64, error) {
	z, err := linalg.MatVec(X, beta)
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}

	return z, nil
}
