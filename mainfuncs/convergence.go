package mainfuncs

import (
	"fmt"
	"math"
	"time"

	"github.com/banachtech/antivar/bs"
	"github.com/banachtech/antivar/mc"
)

// Level is one rung of a convergence study.
type Level struct {
	Trials int
	Price  float64
	SE     float64
	AbsErr float64
}

// Convergence prices the same market at growing trial counts and records
// the gap to the closed form value at each level. cfg.Trials is ignored,
// the levels drive it. All levels share the base seed, so the study runs on
// common random numbers.
func Convergence(mkt mc.Market, cfg mc.Config, levels []int) ([]Level, error) {
	if err := mkt.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", mc.ErrInvalidParameter)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	closed := bs.Call(mkt.S, mkt.K, mkt.Sigma, mkt.R, mkt.T)
	out := make([]Level, 0, len(levels))
	bar := progressBar(len(levels))
	bar.Describe("convergence study")
	for _, m := range levels {
		c := cfg
		c.Trials = m
		pairs, err := mc.Direct(mkt, c)
		if err != nil {
			return nil, err
		}
		res, err := mc.Estimate(pairs, mkt)
		if err != nil {
			return nil, err
		}
		out = append(out, Level{Trials: m, Price: res.Price, SE: res.SE, AbsErr: math.Abs(res.Price - closed)})
		bar.Add(1)
	}
	return out, nil
}
