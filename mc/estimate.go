package mc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PayoffPair is one antithetic trial: the payoffs of the two mirrored paths
// driven by +z and -z.
type PayoffPair struct {
	C1, C2 float64
}

// Mean is the trial estimate 0.5*(C1+C2).
func (p PayoffPair) Mean() float64 {
	return 0.5 * (p.C1 + p.C2)
}

// Result is a discounted Monte Carlo estimate and its standard error.
type Result struct {
	Price float64
	SE    float64
}

// Estimate reduces antithetic trials to a discounted price and standard
// error.
func Estimate(pairs []PayoffPair, mkt Market) (Result, error) {
	ct := make([]float64, len(pairs))
	for i, p := range pairs {
		ct[i] = p.Mean()
	}
	return reduce(ct, mkt)
}

// EstimateSingles reduces plain one path payoffs. Both estimators funnel
// into the same reduction, so a benchmark run cannot drift from the
// antithetic one in anything but its sampling.
func EstimateSingles(payoffs []float64, mkt Market) (Result, error) {
	return reduce(payoffs, mkt)
}

// reduce discounts and averages the trial estimates. The sample variance is
// the centered two pass form with the M-1 divisor, each estimator centered
// on its own mean.
func reduce(ct []float64, mkt Market) (Result, error) {
	if err := mkt.Validate(); err != nil {
		return Result{}, err
	}
	if len(ct) < 2 {
		return Result{}, fmt.Errorf("%w: %d trials, want at least 2", ErrInsufficientSamples, len(ct))
	}
	mean, std := stat.MeanStdDev(ct, nil)
	df := math.Exp(-mkt.R * mkt.T)
	return Result{Price: df * mean, SE: df * stat.StdErr(std, float64(len(ct)))}, nil
}
