// SPDX-License-Identifier: MIT

package likelihood

import (
	"errors"
	"fmt"
)

// ErrDomain is returned when a response is not exactly 0 or 1, or when a
// probability lies outside [0,1].
var ErrDomain = errors.New("likelihood: value outside domain")

// LogLikelihoodFunc is the capability shared by the data term, the prior term
// and their sum: a scalar log-likelihood evaluated at a coefficient vector.
type LogLikelihoodFunc interface {
	LogLikelihood(beta []float64) (float64, error)
}

// Compile-time assertions for capability conformance.
var (
	_ LogLikelihoodFunc = (*Data)(nil)
	_ LogLikelihoodFunc = (*Prior)(nil)
	_ LogLikelihoodFunc = Sum(nil)
)

// Sum is the log-likelihood of a product of densities: the sum of its terms.
// Sum{data, prior} is the unnormalized log-posterior.
type Sum []LogLikelihoodFunc

// LogLikelihood evaluates every term at beta and adds them in order.
// The first failing term aborts the evaluation.
func (s Sum) LogLikelihood(beta []float64) (float64, error) {
	var total float64
	for i, term := range s {
		v, err := term.LogLikelihood(beta)
		if err != nil {
			return 0, fmt.Errorf("likelihood: term %d: %w", i, err)
		}
		total += v
	}

	return total, nil
}
