package empirical

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/probmix/probmix/chain"
)

// ErrBadBandwidth indicates a bandwidth override of the wrong length or
// with a non-positive or non-finite entry.
var ErrBadBandwidth = errors.New("empirical: bandwidths must be positive finite, one per dimension")

// log(2π), the Gaussian kernel's normalization constant per dimension.
const log2Pi = 1.8378770664093454836

// Options configures kernel density estimation.
//   - Bandwidth: per-dimension kernel widths. nil selects Silverman's rule;
//     a non-nil slice must have one positive finite entry per dimension.
type Options struct {
	Bandwidth []float64
}

// DefaultOptions returns the default KDE configuration (rule-of-thumb
// bandwidths).
func DefaultOptions() Options {
	return Options{}
}

// KDE is a Gaussian product-kernel density estimate fitted to a sample
// chain. It implements logpdf.LogPDF and is immutable after construction.
type KDE struct {
	samples chain.Chain
	bw      []float64
	logNorm float64 // −ln n − Σ ln h_j − (d/2)·ln 2π
}

// NewKDE fits a kernel density estimate to c. The chain must be valid
// (non-empty, rectangular); validation errors from the chain package pass
// through. opts may be nil for defaults.
func NewKDE(c chain.Chain, opts *Options) (*KDE, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n, dim := c.Len(), c.Dim()

	var bw []float64
	if opts != nil && opts.Bandwidth != nil {
		if len(opts.Bandwidth) != dim {
			return nil, ErrBadBandwidth
		}
		for _, h := range opts.Bandwidth {
			if !(h > 0) || math.IsInf(h, 1) {
				return nil, ErrBadBandwidth
			}
		}
		bw = append([]float64(nil), opts.Bandwidth...)
	} else {
		bw = make([]float64, dim)
		for j := 0; j < dim; j++ {
			col, err := c.Column(j)
			if err != nil {
				return nil, err
			}
			bw[j] = silverman(col, n, dim)
		}
	}

	// Copy the samples so later caller mutations cannot skew evaluations.
	samples := make(chain.Chain, n)
	for i, s := range c {
		samples[i] = append([]float64(nil), s...)
	}

	logNorm := -math.Log(float64(n)) - float64(dim)/2*log2Pi
	for _, h := range bw {
		logNorm -= math.Log(h)
	}

	return &KDE{samples: samples, bw: bw, logNorm: logNorm}, nil
}

// silverman computes the rule-of-thumb bandwidth for one dimension:
// σ·(4/((d+2)·n))^(1/(d+4)) with σ = min(stdev, IQR/1.349). A degenerate
// spread (constant column) falls back to bandwidth 1 so the estimate stays
// evaluable.
func silverman(col []float64, n, dim int) float64 {
	sorted := append([]float64(nil), col...)
	sort.Float64s(sorted)

	sigma := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)
	if s := iqr / 1.349; s > 0 && s < sigma {
		sigma = s
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) || math.IsNaN(sigma) {
		return 1
	}
	return sigma * math.Pow(4/(float64(dim+2)*float64(n)), 1/float64(dim+4))
}

// ParameterCount reports the dimension of the fitted samples.
func (k *KDE) ParameterCount() int { return k.samples.Dim() }

// Bandwidth returns a copy of the per-dimension kernel widths in use.
func (k *KDE) Bandwidth() []float64 {
	return append([]float64(nil), k.bw...)
}

// LogDensity evaluates ln g(params) for the fitted estimate.
// len(params) must equal ParameterCount().
//
// The kernel terms are combined with a shift-by-max log-sum-exp so distant
// evaluation points return large negative values rather than −Inf.
func (k *KDE) LogDensity(params []float64) float64 {
	terms := make([]float64, len(k.samples))
	for i, s := range k.samples {
		var q float64
		for j, x := range params {
			z := (x - s[j]) / k.bw[j]
			q += z * z
		}
		terms[i] = -0.5 * q
	}

	maxTerm := math.Inf(-1)
	for _, t := range terms {
		if t > maxTerm {
			maxTerm = t
		}
	}
	var sum float64
	for _, t := range terms {
		sum += math.Exp(t - maxTerm)
	}
	return maxTerm + math.Log(sum) + k.logNorm
}
