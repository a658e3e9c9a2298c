// Package logpdf defines the log-density capability consumed by the rest of
// the module, plus a few reference components built on gonum's distribution
// types.
//
// 🚀 What is a log-density component?
//
//	Any value that knows (a) how many parameters it consumes and (b) how to
//	map a parameter vector of that length to the natural logarithm of a
//	probability density.  Working on the log scale keeps very small and very
//	large densities representable, which matters for:
//	  • High-dimensional or sharply peaked targets
//	  • Likelihood products over many observations
//	  • Downstream mixtures combined via log-sum-exp
//
// ✨ Key pieces:
//   - LogPDF — the two-method capability (ParameterCount, LogDensity)
//   - Sampler — optional capability for components that can draw from
//     their own density (required by Monte Carlo divergence estimates)
//   - Gaussian, Uniform — 1-parameter reference components (distuv)
//   - MultivariateGaussian — d-parameter reference component (distmv + mat)
//
// ⚠️ Normalization precondition:
//
//	Consumers such as mixture.Model assume every LogPDF integrates to one
//	over its domain.  This is a documented caller contract, never a checked
//	invariant — verifying it would require integrating arbitrary densities.
//
// ⚙️ Usage:
//
//	import "github.com/probmix/probmix/logpdf"
//
//	g, err := logpdf.NewGaussian(0, 1)
//	if err != nil { ... }
//	score := g.LogDensity([]float64{0.3})
//
// Implementations must be deterministic: identical input, identical output.
// Internal randomness in LogDensity makes downstream results irreproducible.
package logpdf
