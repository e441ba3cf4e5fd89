package payoff

import "math"

// Call is a European call struck at K.
type Call struct {
	K float64
}

// Payout is the exercise value at terminal price s, floored at zero.
func (c Call) Payout(s float64) float64 {
	return math.Max(s-c.K, 0.0)
}
