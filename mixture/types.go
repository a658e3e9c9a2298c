package mixture

import "errors"

var (
	// ErrNoComponents indicates construction with an empty component list.
	ErrNoComponents = errors.New("mixture: at least one component is required")
	// ErrNilComponent indicates a component that does not satisfy the
	// log-density capability (a nil interface value).
	ErrNilComponent = errors.New("mixture: components must satisfy the logpdf.LogPDF capability")
	// ErrBadComponent indicates a component reporting a negative parameter count.
	ErrBadComponent = errors.New("mixture: component parameter counts must be non-negative")
	// ErrWeightCount indicates the number of weights differs from the number
	// of components.
	ErrWeightCount = errors.New("mixture: exactly one weight per component is required")
	// ErrBadWeight indicates a weight that is not a real number (NaN).
	ErrBadWeight = errors.New("mixture: weights must be real numbers")
	// ErrDimensionMismatch indicates a parameter vector (or chain dimension)
	// whose length differs from the model's total parameter count.
	ErrDimensionMismatch = errors.New("mixture: parameter vector length must equal ParameterCount()")
	// ErrSampleCount indicates a non-positive Monte Carlo sample count.
	ErrSampleCount = errors.New("mixture: sample count must be positive")
	// ErrNotSampleable indicates a component without the logpdf.Sampler
	// capability in a context that must draw from the model.
	ErrNotSampleable = errors.New("mixture: all components must implement logpdf.Sampler to draw from the model")
)

// KLOptions configures the Kullback–Leibler divergence estimator.
//   - Seed: RNG seed for the Monte Carlo draws. Seed 0 selects a fixed
//     default seed, so results are reproducible unless a caller opts into
//     its own seeding policy.
//   - Bandwidth: per-dimension kernel widths for the empirical density
//     reconstruction; nil selects the rule-of-thumb default.
type KLOptions struct {
	Seed      uint64
	Bandwidth []float64
}

// DefaultKLOptions returns the default estimator configuration:
// fixed seed, rule-of-thumb bandwidths.
func DefaultKLOptions() KLOptions {
	return KLOptions{}
}
