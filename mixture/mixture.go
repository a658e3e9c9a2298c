package mixture

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/probmix/probmix/logpdf"
)

// Model is a weighted mixture of log-density components over partitioned
// parameters. Construct via New; the value is immutable afterwards and safe
// for concurrent read-only use provided its components are.
type Model struct {
	components []logpdf.LogPDF
	logWeights []float64
	// offsets has one entry per component plus a trailing total: component i
	// consumes params[offsets[i]:offsets[i+1]].
	offsets []int
}

// New builds a mixture model from equal-length lists of components and
// weights. Weights need not be normalized: a common positive scale factor
// only shifts every log-density by a constant, so relative mixture
// proportions are all that matters on the log scale.
//
// Errors:
//   - ErrNoComponents — empty component list.
//   - ErrNilComponent — a nil component (capability not satisfied); checked
//     before any weight processing.
//   - ErrBadComponent — a component reports a negative parameter count.
//   - ErrWeightCount  — len(weights) != len(components).
//   - ErrBadWeight    — a NaN weight.
//
// Zero or negative weights are NOT rejected: their logarithm is −Inf or NaN
// and silently corrupts every subsequent evaluation. Supplying one is
// undefined behavior, mirroring the unchecked normalization precondition on
// the components themselves.
func New(components []logpdf.LogPDF, weights []float64) (*Model, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	// Capability and partition checks precede all weight processing.
	offsets := make([]int, len(components)+1)
	for i, comp := range components {
		if comp == nil {
			return nil, ErrNilComponent
		}
		n := comp.ParameterCount()
		if n < 0 {
			return nil, ErrBadComponent
		}
		offsets[i+1] = offsets[i] + n
	}

	if len(weights) != len(components) {
		return nil, ErrWeightCount
	}
	logWeights := make([]float64, len(weights))
	for i, w := range weights {
		if math.IsNaN(w) {
			return nil, ErrBadWeight
		}
		logWeights[i] = math.Log(w)
	}

	return &Model{
		components: append([]logpdf.LogPDF(nil), components...),
		logWeights: logWeights,
		offsets:    offsets,
	}, nil
}

// ParameterCount reports the total number of parameters the mixture
// consumes: the sum of every component's count.
func (m *Model) ParameterCount() int {
	return m.offsets[len(m.offsets)-1]
}

// NumComponents reports how many components the mixture combines.
func (m *Model) NumComponents() int {
	return len(m.components)
}

// LogDensity evaluates the mixture's log-density at params.
//
// Each component receives its own contiguous sub-range of params per the
// construction-order partition; its log-density plus its log-weight forms
// one weighted term, and the terms combine through a shift-by-max
// log-sum-exp. A pure function of its argument: no state changes, no
// partial work on error.
//
// Returns ErrDimensionMismatch when len(params) != ParameterCount().
func (m *Model) LogDensity(params []float64) (float64, error) {
	if len(params) != m.ParameterCount() {
		return 0, ErrDimensionMismatch
	}

	terms := make([]float64, len(m.components))
	for i, comp := range m.components {
		sub := params[m.offsets[i]:m.offsets[i+1]]
		terms[i] = m.logWeights[i] + comp.LogDensity(sub)
	}
	return logSumExp(terms), nil
}

// logSumExp combines log-scale terms as ln Σ exp(termᵢ), shifting by the
// maximum term so the exponentials stay in range. terms must be non-empty.
//
// A single term t returns exactly t + ln(1) = t, so a one-component
// mixture with weight 1 reproduces its component's log-density without
// drift beyond floating-point rounding.
func logSumExp(terms []float64) float64 {
	maxTerm := floats.Max(terms)
	if math.IsInf(maxTerm, 0) {
		// All terms −Inf (zero density everywhere), or some term +Inf:
		// shifting would produce NaN, and the exact answer is maxTerm.
		return maxTerm
	}
	var sum float64
	for _, t := range terms {
		sum += math.Exp(t - maxTerm)
	}
	return maxTerm + math.Log(sum)
}
