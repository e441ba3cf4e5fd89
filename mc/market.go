// Package mc prices a European call under geometric Brownian motion by
// Monte Carlo with antithetic variates. Each trial drives two mirrored
// price paths from one shock sequence and averages their payoffs; a crude
// single-path sampler over the same budget serves as the benchmark.
package mc

import (
	"errors"
	"fmt"
)

// Validation errors reported at the public boundary, before any randomness
// is consumed.
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrInsufficientSamples = errors.New("insufficient samples")
)

// Market holds the pricing inputs for a single underlying: spot, strike,
// annualised volatility, continuously compounded risk-free rate and time to
// maturity in years.
type Market struct {
	S     float64
	K     float64
	Sigma float64
	R     float64
	T     float64
}

// Check the inputs are inside the model domain. The rate may take either
// sign and the volatility may be zero. The negated comparisons also reject
// NaN.
func (m Market) Validate() error {
	if !(m.S > 0.0) {
		return fmt.Errorf("%w: spot %v, want > 0", ErrInvalidParameter, m.S)
	}
	if !(m.K > 0.0) {
		return fmt.Errorf("%w: strike %v, want > 0", ErrInvalidParameter, m.K)
	}
	if !(m.Sigma >= 0.0) {
		return fmt.Errorf("%w: volatility %v, want >= 0", ErrInvalidParameter, m.Sigma)
	}
	if !(m.T > 0.0) {
		return fmt.Errorf("%w: maturity %v, want > 0", ErrInvalidParameter, m.T)
	}
	return nil
}

// Config controls a simulation run: number of trials, time steps per path
// and the generator seed. Seed 0 draws a seed from the wall clock, so runs
// are reproducible only with an explicit seed.
type Config struct {
	Trials int
	Steps  int
	Seed   uint64
}

// The sample variance needs at least two trials.
func (c Config) Validate() error {
	if c.Trials < 2 {
		return fmt.Errorf("%w: %d trials, want at least 2", ErrInsufficientSamples, c.Trials)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: %d steps, want at least 1", ErrInvalidParameter, c.Steps)
	}
	return nil
}
