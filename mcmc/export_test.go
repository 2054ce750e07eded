// SPDX-License-Identifier: MIT

package mcmc

// Test bridge for white-box checks from package mcmc_test.
var (
	AcceptanceForTest = acceptance
	DeriveSeedForTest = deriveSeed
)
