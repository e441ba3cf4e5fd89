package mc

import "math"

// GBM is risk-neutral geometric Brownian motion, simulated on the log
// scale.
type GBM struct {
	Sigma, R float64
}

// Drift is the log price drift r - sigma^2/2.
func (g GBM) Drift() float64 {
	return g.R - 0.5*g.Sigma*g.Sigma
}

// Advance log spot over len(z) equal steps covering T years, applying every
// shock with both signs, and return the two terminal prices. Driving a
// mirrored pair from one shock vector is what makes the pair antithetic.
// The mapping is pure: the same shocks always give the same prices.
func (g GBM) TerminalPair(s0, T float64, z []float64) (float64, float64) {
	N := len(z)
	dt := T / float64(N)
	// Pre compute the per step drift and diffusion scale
	a := g.Drift() * dt
	b := g.Sigma * math.Sqrt(dt)
	x1 := math.Log(s0)
	x2 := x1
	for i := 0; i < N; i++ {
		x1 += a + b*z[i]
		x2 += a - b*z[i]
	}
	return math.Exp(x1), math.Exp(x2)
}
