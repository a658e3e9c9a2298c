package logpdf

import "golang.org/x/exp/rand"

// LogPDF is the log-density capability: anything that consumes a fixed
// number of parameters and maps a parameter vector of that length to a
// real-valued log-density.
//
// Contract:
//   - ParameterCount is non-negative and fixed for the value's lifetime.
//   - LogDensity is only defined for inputs of length ParameterCount();
//     callers are responsible for slicing correctly.
//   - LogDensity is deterministic given identical input.
//   - The density must be normalized (integrate to one) for consumers such
//     as mixture models to produce correct results; this is a documented
//     precondition, not a checked invariant.
type LogPDF interface {
	// ParameterCount reports how many parameters the density consumes.
	ParameterCount() int

	// LogDensity evaluates ln p(params). len(params) must equal
	// ParameterCount().
	LogDensity(params []float64) float64
}

// Sampler is the optional draw capability. Components that implement it can
// generate parameter vectors distributed according to their own density,
// which Monte Carlo consumers (e.g. divergence estimators) require.
//
// Sample must return a fresh slice of length ParameterCount(). The supplied
// rng is the only source of randomness; a nil rng is not permitted.
type Sampler interface {
	Sample(rng *rand.Rand) []float64
}
