package logpdf

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

var (
	// ErrBadCovariance indicates a covariance matrix that is nil, mismatched
	// with the mean, or not positive definite.
	ErrBadCovariance = errors.New("logpdf: covariance must be positive definite and match the mean dimension")
)

// MultivariateGaussian is a d-parameter normal density N(mean, cov).
// Construct via NewMultivariateGaussian; the value is immutable afterwards.
type MultivariateGaussian struct {
	mean []float64
	chol mat.Cholesky
}

// NewMultivariateGaussian builds a multivariate normal component from a mean
// vector and a symmetric covariance matrix. The covariance is factorized
// once at construction; ErrBadCovariance is returned when the dimensions
// disagree or the matrix is not positive definite.
func NewMultivariateGaussian(mean []float64, cov *mat.SymDense) (*MultivariateGaussian, error) {
	if cov == nil || len(mean) == 0 || cov.SymmetricDim() != len(mean) {
		return nil, ErrBadCovariance
	}
	g := &MultivariateGaussian{mean: append([]float64(nil), mean...)}
	if ok := g.chol.Factorize(cov); !ok {
		return nil, ErrBadCovariance
	}
	return g, nil
}

// ParameterCount reports the dimension of the mean vector.
func (m *MultivariateGaussian) ParameterCount() int { return len(m.mean) }

// LogDensity evaluates the multivariate normal log-density at params.
func (m *MultivariateGaussian) LogDensity(params []float64) float64 {
	return distmv.NormalLogProb(params, m.mean, &m.chol)
}

// Sample draws one vector from N(mean, cov) using rng.
func (m *MultivariateGaussian) Sample(rng *rand.Rand) []float64 {
	return distmv.NormalRand(nil, m.mean, &m.chol, rng)
}
