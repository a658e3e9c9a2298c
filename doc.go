// Package probmix is an in-memory toolkit for composing probability
// densities into weighted mixtures, evaluating them stably in log space,
// and measuring how far a sampler's output drifts from the target.
//
// 🚀 What is probmix?
//
//	A small, focused library that brings together:
//		• Log-density capability: one interface any density can implement
//		• Mixture models: weighted combinations over partitioned parameters
//		• Stable evaluation: log-sum-exp combination, no overflow/underflow
//		• Divergence diagnostics: Monte Carlo Kullback–Leibler estimates
//		  against an empirical density rebuilt from a sample chain
//		• Chain summaries: per-dimension mean, variance, effective sample size
//
// ✨ Why choose probmix?
//
//   - Minimal API – a two-method capability, plain float64 slices
//   - Deterministic – seedable draws, no time-based randomness hidden anywhere
//   - Immutable models – safe for concurrent read-only evaluation
//   - Built on gonum – distributions, statistics and matrices from one stack
//
// Everything is organized under four subpackages:
//
//	logpdf/    — the LogPDF capability + reference components (Gaussian, …)
//	mixture/   — the weighted mixture model and its KL divergence estimator
//	empirical/ — kernel density estimates reconstructed from sample chains
//	chain/     — sample-chain type, validation and summary statistics
//
// Quick example:
//
//	a := logpdf.Gaussian{Mean: 0, StdDev: 1}
//	b := logpdf.Gaussian{Mean: 5, StdDev: 1}
//	m, err := mixture.New([]logpdf.LogPDF{a, b}, []float64{0.5, 0.5})
//	if err != nil {
//	  // handle construction error
//	}
//	score, err := m.LogDensity([]float64{0.0, 5.0})
//
// See each subpackage's doc.go for contracts, edge cases and worked
// examples.
//
//	go get github.com/probmix/probmix
package probmix
