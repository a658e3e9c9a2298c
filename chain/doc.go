// Package chain provides the sample-chain type shared by the empirical and
// mixture packages, together with the summary statistics usually reported
// next to a divergence estimate.
//
// A chain is an ordered list of d-dimensional sample vectors, typically the
// output of an MCMC run.  The package validates shape (non-empty,
// rectangular), exposes per-dimension views, and computes:
//   - Mean, Variance — per-dimension moments (gonum/stat)
//   - ESS — effective sample size via the initial-positive-sequence
//     autocorrelation estimator, the standard diagnostic for how many
//     independent draws a correlated chain is worth
//
// ⚙️ Usage:
//
//	c := chain.Chain{{0.1, 4.9}, {0.2, 5.1}, ...}
//	if err := c.Validate(); err != nil { ... }
//	ess, err := c.ESS(0) // effective sample size of dimension 0
//
// Chains are treated as read-only: no function in this module mutates a
// chain it is given.
package chain
