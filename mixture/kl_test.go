package mixture_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/probmix/probmix/chain"
	"github.com/probmix/probmix/empirical"
	"github.com/probmix/probmix/logpdf"
	"github.com/probmix/probmix/mixture"
)

// gaussianChain draws n one-dimensional samples from N(mean, sd²) with a
// fixed seed, standing in for an MCMC chain that has converged to the
// target.
func gaussianChain(t *testing.T, mean, sd float64, n int, seed uint64) chain.Chain {
	t.Helper()
	g, err := logpdf.NewGaussian(mean, sd)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	c := make(chain.Chain, n)
	for i := range c {
		c[i] = g.Sample(rng)
	}
	return c
}

// TestEstimateKL_SampleCount rejects non-positive sample counts before any
// other work.
func TestEstimateKL_SampleCount(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 50, 7)
	for _, n := range []int{0, -3} {
		_, _, err := m.EstimateKL(c, n, nil)
		assert.ErrorIs(t, err, mixture.ErrSampleCount, "n=%d must error", n)
	}
}

// TestEstimateKL_NotSampleable errors when a component lacks the Sampler
// capability required for Monte Carlo draws.
func TestEstimateKL_NotSampleable(t *testing.T) {
	m, err := mixture.New([]logpdf.LogPDF{constPDF{n: 1, val: -1}}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 50, 7)
	_, _, err = m.EstimateKL(c, 10, nil)
	assert.ErrorIs(t, err, mixture.ErrNotSampleable)
}

// TestEstimateKL_ChainErrors propagates chain validation and dimension
// failures.
func TestEstimateKL_ChainErrors(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	_, _, err = m.EstimateKL(nil, 10, nil)
	assert.ErrorIs(t, err, chain.ErrEmptyChain, "empty chain must error")

	_, _, err = m.EstimateKL(chain.Chain{{1, 2}, {3}}, 10, nil)
	assert.ErrorIs(t, err, chain.ErrRaggedChain, "ragged chain must error")

	_, _, err = m.EstimateKL(chain.Chain{{1, 2}, {3, 4}}, 10, nil)
	assert.ErrorIs(t, err, mixture.ErrDimensionMismatch, "2-dim chain against a 1-parameter model must error")
}

// TestEstimateKL_BadBandwidth propagates bandwidth validation from the
// empirical package.
func TestEstimateKL_BadBandwidth(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 50, 7)
	opts := mixture.DefaultKLOptions()
	opts.Bandwidth = []float64{-1}
	_, _, err = m.EstimateKL(c, 10, &opts)
	assert.ErrorIs(t, err, empirical.ErrBadBandwidth)
}

// TestEstimateKL_Deterministic verifies that identical inputs and seeds
// yield bit-identical estimates, and that different seeds move the draws.
func TestEstimateKL_Deterministic(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 400, 11)

	opts := mixture.DefaultKLOptions()
	opts.Seed = 99
	kl1, se1, err := m.EstimateKL(c, 200, &opts)
	require.NoError(t, err)
	kl2, se2, err := m.EstimateKL(c, 200, &opts)
	require.NoError(t, err)
	assert.Equal(t, kl1, kl2, "same seed must reproduce the estimate exactly")
	assert.Equal(t, se1, se2, "same seed must reproduce the error exactly")

	opts.Seed = 100
	kl3, _, err := m.EstimateKL(c, 200, &opts)
	require.NoError(t, err)
	assert.NotEqual(t, kl1, kl3, "a different seed must change the draws")
}

// TestEstimateKL_WellSampledTarget checks the headline behavior: a chain
// actually drawn from the target density yields a small divergence with a
// finite positive standard error.
func TestEstimateKL_WellSampledTarget(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 2000, 42)
	kl, se, err := m.EstimateKL(c, 500, nil)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(kl) || math.IsInf(kl, 0), "estimate must be finite")
	assert.Less(t, math.Abs(kl), 0.5, "a well-sampled target should have near-zero divergence")
	assert.Greater(t, se, 0.0, "standard error must be positive")
	assert.Less(t, se, 0.5, "standard error should be small for 500 draws")
}

// TestEstimateKL_MismatchedChain checks the opposite direction: a chain
// sampled far from the target yields a clearly positive divergence.
func TestEstimateKL_MismatchedChain(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	// The chain explored N(20, 1) instead of the target N(0, 1).
	c := gaussianChain(t, 20, 1, 2000, 42)
	kl, _, err := m.EstimateKL(c, 300, nil)
	require.NoError(t, err)

	assert.Greater(t, kl, 1.0, "a badly mismatched chain must show large divergence")
}

// TestEstimateKL_MultiComponent exercises the partitioned draw path: every
// component fills its own block, so a two-component model needs a
// two-dimensional chain.
func TestEstimateKL_MultiComponent(t *testing.T) {
	a := mustGaussian(t, 0, 1)
	b := mustGaussian(t, 5, 1)
	m, err := mixture.New([]logpdf.LogPDF{a, b}, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 2, m.ParameterCount())

	rng := rand.New(rand.NewSource(3))
	c := make(chain.Chain, 1500)
	for i := range c {
		c[i] = []float64{a.Sample(rng)[0], b.Sample(rng)[0]}
	}

	kl, se, err := m.EstimateKL(c, 300, nil)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(kl) || math.IsInf(kl, 0))
	assert.Greater(t, se, 0.0)
}

// TestEstimateKL_SingleDraw pins the documented n==1 contract: the
// estimate is a single log-ratio and the standard error is NaN.
func TestEstimateKL_SingleDraw(t *testing.T) {
	g := mustGaussian(t, 0, 1)
	m, err := mixture.New([]logpdf.LogPDF{g}, []float64{1})
	require.NoError(t, err)

	c := gaussianChain(t, 0, 1, 100, 5)
	kl, se, err := m.EstimateKL(c, 1, nil)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(kl), "a single draw still yields a real estimate")
	assert.True(t, math.IsNaN(se), "the variance of one draw is undefined")
}
