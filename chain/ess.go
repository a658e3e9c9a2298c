package chain

import "gonum.org/v1/gonum/stat"

// ESS estimates the effective sample size of coordinate dim using Geyer's
// initial-positive-sequence truncation of the autocorrelation sum:
//
//  1. Compute normalized autocorrelations ρ_t of the centered column.
//  2. Sum consecutive pairs Γ_k = ρ_{2k} + ρ_{2k+1}; each Γ_k of a
//     stationary reversible chain is positive, so summation stops at the
//     first non-positive pair.
//  3. τ = max(1, −1 + 2·ΣΓ_k) is the integrated autocorrelation time and
//     ESS = n/τ.
//
// A constant column has no autocorrelation structure; its ESS is reported
// as n. ErrDimensionRange (or a validation error) is returned for bad
// input.
//
// Complexity: O(n²) worst case, in practice O(n·τ) since summation stops
// at the first non-positive pair.
func (c Chain) ESS(dim int) (float64, error) {
	col, err := c.Column(dim)
	if err != nil {
		return 0, err
	}
	n := len(col)
	if n == 1 {
		return 1, nil
	}

	mean := stat.Mean(col, nil)
	centered := make([]float64, n)
	for i, v := range col {
		centered[i] = v - mean
	}

	// Biased autocovariance at lag t, normalized by c0 into ρ_t.
	autocov := func(t int) float64 {
		var sum float64
		for i := 0; i+t < n; i++ {
			sum += centered[i] * centered[i+t]
		}
		return sum / float64(n)
	}

	c0 := autocov(0)
	if c0 == 0 {
		return float64(n), nil
	}

	// Γ_0 starts from ρ_0 = 1; pairs continue while they stay positive.
	var pairSum float64
	for k := 0; 2*k < n; k++ {
		gamma := autocov(2*k) / c0
		if 2*k+1 < n {
			gamma += autocov(2*k+1) / c0
		}
		if gamma <= 0 {
			break
		}
		pairSum += gamma
	}

	tau := -1 + 2*pairSum
	if tau < 1 {
		tau = 1
	}
	return float64(n) / tau, nil
}
