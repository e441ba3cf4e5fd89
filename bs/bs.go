// Package bs provides Black-Scholes closed-form values for European
// options, used as the benchmark the Monte Carlo estimators are checked
// against.
package bs

import (
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// Call is the Black-Scholes value of a European call.
func Call(s, k, sigma, r, t float64) float64 {
	if t <= 0 {
		return math.Max(s-k, 0.0)
	}
	if sigma <= 0 {
		// Deterministic forward, only the discounted intrinsic value remains.
		return math.Max(s-k*math.Exp(-r*t), 0.0)
	}
	x := sigma * math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / x
	d2 := d1 - x

	N := distuv.Normal{Mu: 0.0, Sigma: 1.0}

	return s*N.CDF(d1) - k*math.Exp(-r*t)*N.CDF(d2)
}

// Put is the Black-Scholes value of a European put.
func Put(s, k, sigma, r, t float64) float64 {
	if t <= 0 {
		return math.Max(k-s, 0.0)
	}
	if sigma <= 0 {
		return math.Max(k*math.Exp(-r*t)-s, 0.0)
	}
	x := sigma * math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / x
	d2 := d1 - x

	N := distuv.Normal{Mu: 0.0, Sigma: 1.0}

	return -s*N.CDF(-d1) + k*math.Exp(-r*t)*N.CDF(-d2)
}

// price loss function
func loss(par []float64, p, s, k, r, t float64) float64 {
	sigma := math.Exp(par[0])
	d := p - Call(s, k, sigma, r, t)
	return d * d
}

// ImpliedVol recovers the volatility at which Call reproduces the quoted
// price p. The search runs over log-volatility so it stays positive.
func ImpliedVol(p, s, k, r, t float64) (float64, error) {
	par := []float64{math.Log(0.5)}
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			return loss(par, p, s, k, r, t)
		},
	}
	res, err := optimize.Minimize(problem, par, nil, &optimize.NelderMead{})
	if err != nil {
		return math.NaN(), err
	}
	return math.Exp(res.X[0]), nil
}
