package logpdf

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrBadStdDev indicates a non-positive or non-finite standard deviation.
	ErrBadStdDev = errors.New("logpdf: standard deviation must be positive and finite")
	// ErrBadInterval indicates a uniform interval with Min >= Max.
	ErrBadInterval = errors.New("logpdf: interval must satisfy Min < Max")
)

// Gaussian is a 1-parameter normal density N(Mean, StdDev²).
// The zero value is invalid; construct via NewGaussian.
type Gaussian struct {
	Mean   float64
	StdDev float64
}

// NewGaussian returns a Gaussian component, or ErrBadStdDev when sd is not
// a positive finite number.
func NewGaussian(mean, sd float64) (Gaussian, error) {
	if !(sd > 0) || math.IsInf(sd, 1) {
		return Gaussian{}, ErrBadStdDev
	}
	return Gaussian{Mean: mean, StdDev: sd}, nil
}

// ParameterCount reports 1.
func (g Gaussian) ParameterCount() int { return 1 }

// LogDensity evaluates the normal log-density at params[0].
func (g Gaussian) LogDensity(params []float64) float64 {
	return distuv.Normal{Mu: g.Mean, Sigma: g.StdDev}.LogProb(params[0])
}

// Sample draws one value from N(Mean, StdDev²) using rng.
func (g Gaussian) Sample(rng *rand.Rand) []float64 {
	d := distuv.Normal{Mu: g.Mean, Sigma: g.StdDev, Src: rng}
	return []float64{d.Rand()}
}

// Uniform is a 1-parameter uniform density on [Min, Max].
// The zero value is invalid; construct via NewUniform.
type Uniform struct {
	Min float64
	Max float64
}

// NewUniform returns a Uniform component, or ErrBadInterval when the bounds
// do not satisfy min < max.
func NewUniform(min, max float64) (Uniform, error) {
	if !(min < max) {
		return Uniform{}, ErrBadInterval
	}
	return Uniform{Min: min, Max: max}, nil
}

// ParameterCount reports 1.
func (u Uniform) ParameterCount() int { return 1 }

// LogDensity evaluates the uniform log-density at params[0];
// −Inf outside [Min, Max].
func (u Uniform) LogDensity(params []float64) float64 {
	return distuv.Uniform{Min: u.Min, Max: u.Max}.LogProb(params[0])
}

// Sample draws one value uniformly from [Min, Max) using rng.
func (u Uniform) Sample(rng *rand.Rand) []float64 {
	d := distuv.Uniform{Min: u.Min, Max: u.Max, Src: rng}
	return []float64{d.Rand()}
}
