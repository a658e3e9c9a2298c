package chain

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyChain indicates a chain with no samples.
	ErrEmptyChain = errors.New("chain: chain must contain at least one sample")
	// ErrRaggedChain indicates samples of differing dimension.
	ErrRaggedChain = errors.New("chain: all samples must have the same dimension")
	// ErrZeroDimension indicates samples with no coordinates.
	ErrZeroDimension = errors.New("chain: samples must have at least one dimension")
	// ErrDimensionRange indicates a requested dimension index is out of range.
	ErrDimensionRange = errors.New("chain: dimension index out of range")
)

// Chain is an ordered list of equal-length sample vectors, typically the
// output of an MCMC run. Consumers treat chains as read-only.
type Chain [][]float64

// Validate checks that the chain is non-empty and rectangular with at least
// one dimension. Returns ErrEmptyChain, ErrZeroDimension or ErrRaggedChain.
func (c Chain) Validate() error {
	if len(c) == 0 {
		return ErrEmptyChain
	}
	dim := len(c[0])
	if dim == 0 {
		return ErrZeroDimension
	}
	for _, s := range c[1:] {
		if len(s) != dim {
			return ErrRaggedChain
		}
	}
	return nil
}

// Len reports the number of samples.
func (c Chain) Len() int { return len(c) }

// Dim reports the dimension of each sample, or 0 for an empty chain.
func (c Chain) Dim() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Column returns a fresh slice holding coordinate dim of every sample.
// The chain must be valid; ErrDimensionRange is returned for a bad index.
func (c Chain) Column(dim int) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if dim < 0 || dim >= c.Dim() {
		return nil, ErrDimensionRange
	}
	col := make([]float64, len(c))
	for i, s := range c {
		col[i] = s[dim]
	}
	return col, nil
}

// Mean returns the sample mean of coordinate dim.
func (c Chain) Mean(dim int) (float64, error) {
	col, err := c.Column(dim)
	if err != nil {
		return 0, err
	}
	return stat.Mean(col, nil), nil
}

// Variance returns the unbiased sample variance of coordinate dim.
func (c Chain) Variance(dim int) (float64, error) {
	col, err := c.Column(dim)
	if err != nil {
		return 0, err
	}
	return stat.Variance(col, nil), nil
}
