// SPDX-License-Identifier: MIT

// Package mcmc_test demonstrates deterministic Metropolis runs.
package mcmc_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/logitbayes/mcmc"
)

// ExampleSampleMetropolis_zeroProposal shows the degenerate random walk that
// never leaves its start point.
func ExampleSampleMetropolis_zeroProposal() {
	y := []float64{0, 1}
	X := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	start := []float64{0.5, -0.5}
	prior := mat.NewDiagDense(2, []float64{1, 1})
	zero := mat.NewDense(2, 2, nil)

	chain, err := mcmc.SampleMetropolis(y, X, start, []float64{0, 0}, prior, zero, 5, 2, mcmc.NewSource(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(chain.Samples), len(chain.Valid), chain.AcceptanceRate)
	fmt.Println(chain.Samples[5], chain.Mean)
	// Output:
	// 6 4 1
	// [0.5 -0.5] [0.5 -0.5]
}

// ExampleSampler_Run shows that a fixed seed reproduces a chain exactly.
func ExampleSampler_Run() {
	y := []float64{0, 0, 1, 0, 1, 1}
	X := mat.NewDense(6, 2, []float64{1, -2, 1, -1, 1, 0, 1, 1, 1, 2, 1, 3})
	prior := mat.NewDiagDense(2, []float64{100, 100})
	proposal := mat.NewDiagDense(2, []float64{0.25, 0.25})

	s, err := mcmc.NewSampler(y, X, []float64{0, 0}, []float64{0, 0}, prior, proposal,
		mcmc.Options{NumIterations: 1000, NumBurnIn: 100, Seed: 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a, _ := s.Run(nil)
	b, _ := s.Run(mcmc.NewSource(5))
	fmt.Println(len(a.Valid), a.Accepted == b.Accepted, a.Mean[1] == b.Mean[1])
	// Output:
	// 901 true true
}
