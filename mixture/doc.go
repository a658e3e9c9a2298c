// Package mixture combines independently defined log-density components
// into a single weighted mixture density, evaluated in log space, and
// estimates how far a sample chain's empirical density diverges from it.
//
// 🚀 What is a mixture model?
//
//	Given components p = [p₁, …, pₙ] and weights w = [w₁, …, wₙ], the
//	mixture density is
//
//	  p_mix = Σᵢ wᵢ·pᵢ
//
//	The components' parameters are concatenated in construction order to
//	form the mixture's parameter vector: component i reads exactly its own
//	contiguous sub-range, so ParameterCount() is the sum of the
//	components' counts.
//
// ✨ Key features:
//   - log-space evaluation via shift-by-max log-sum-exp: finite results
//     even when individual components report log-densities of magnitude
//     10⁴ and beyond
//   - unnormalized weights accepted: scaling every weight by the same
//     positive constant only shifts the log-density by a constant
//   - Monte Carlo Kullback–Leibler estimate D(f‖g) against an empirical
//     density reconstructed from a sample chain, with a standard-error
//     report
//   - immutable after construction; safe for concurrent read-only use
//     provided the components themselves are
//
// ⚠️ Preconditions (documented, never checked):
//   - Every component must be a normalized probability density; the model
//     cannot verify this and produces wrong results otherwise.
//   - Weights must be strictly positive.  A zero or negative weight has a
//     non-finite or NaN logarithm that silently corrupts every subsequent
//     evaluation — this is undefined behavior, not a runtime error.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/probmix/probmix/logpdf"
//	  "github.com/probmix/probmix/mixture"
//	)
//
//	a, _ := logpdf.NewGaussian(0, 1)
//	b, _ := logpdf.NewGaussian(5, 1)
//	m, err := mixture.New([]logpdf.LogPDF{a, b}, []float64{0.5, 0.5})
//	if err != nil {
//	  // handle ErrNilComponent, ErrWeightCount, ErrBadWeight, …
//	}
//	score, err := m.LogDensity([]float64{0.0, 5.0})
//
// Performance:
//
//   - LogDensity: O(k) component evaluations plus O(k) combination work,
//     k = number of components
//   - EstimateKL: O(n) draws, each costing one model evaluation and one
//     KDE evaluation over the chain
//
// See example_test.go for worked scenarios.
package mixture
