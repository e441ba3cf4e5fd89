package mc

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/banachtech/antivar/payoff"
)

// Initialise the seeded std normal generator for one run. The source is
// confined to that run and never shared.
func (c Config) normal() distuv.Normal {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed)}
}

// Stepwise simulates antithetic payoff pairs on a grid of cfg.Steps equal
// time steps per path.
func Stepwise(mkt Market, cfg Config) ([]PayoffPair, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := cfg.normal()
	g := GBM{Sigma: mkt.Sigma, R: mkt.R}
	v := payoff.Call{K: mkt.K}
	z := make([]float64, cfg.Steps)
	pairs := make([]PayoffPair, cfg.Trials)
	for i := range pairs {
		for j := range z {
			z[j] = d.Rand()
		}
		s1, s2 := g.TerminalPair(mkt.S, mkt.T, z)
		pairs[i] = PayoffPair{C1: v.Payout(s1), C2: v.Payout(s2)}
	}
	return pairs, nil
}

// Direct simulates antithetic payoff pairs by sampling the terminal
// distribution with exactly one shock per trial; cfg.Steps is ignored.
// The closed form mirrors the stepwise update term by term, so a one step
// Stepwise run with the same seed produces identical pairs.
func Direct(mkt Market, cfg Config) ([]PayoffPair, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := cfg.normal()
	g := GBM{Sigma: mkt.Sigma, R: mkt.R}
	v := payoff.Call{K: mkt.K}
	a := g.Drift() * mkt.T
	b := mkt.Sigma * math.Sqrt(mkt.T)
	x0 := math.Log(mkt.S)
	pairs := make([]PayoffPair, cfg.Trials)
	for i := range pairs {
		z := d.Rand()
		s1 := math.Exp(x0 + (a + b*z))
		s2 := math.Exp(x0 + (a - b*z))
		pairs[i] = PayoffPair{C1: v.Payout(s1), C2: v.Payout(s2)}
	}
	return pairs, nil
}

// Crude simulates independent single shot payoffs with no mirroring, one
// draw per trial; cfg.Steps is ignored. This is the plain Monte Carlo
// benchmark the antithetic estimator is measured against.
func Crude(mkt Market, cfg Config) ([]float64, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := cfg.normal()
	g := GBM{Sigma: mkt.Sigma, R: mkt.R}
	v := payoff.Call{K: mkt.K}
	a := g.Drift() * mkt.T
	b := mkt.Sigma * math.Sqrt(mkt.T)
	x0 := math.Log(mkt.S)
	out := make([]float64, cfg.Trials)
	for i := range out {
		out[i] = v.Payout(math.Exp(x0 + (a + b*d.Rand())))
	}
	return out, nil
}
