package mainfuncs

import (
	"fmt"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/banachtech/antivar/bs"
	"github.com/banachtech/antivar/mc"
)

// Report collects one pricing run: the antithetic estimate, the crude
// estimate on the same total shock budget and the closed form value.
type Report struct {
	Antithetic mc.Result
	Crude      mc.Result
	Closed     float64
}

// String formats the headline estimate.
func (r Report) String() string {
	return fmt.Sprintf("Call value is $%.2f with SE +/- %.2f", r.Antithetic.Price, r.Antithetic.SE)
}

// Pricer runs the antithetic and crude estimators side by side. The crude
// run spends the same shock budget, 2M single paths against M mirrored
// pairs. Trials are sharded over workers goroutines with derived seeds, so
// a run is reproducible for a fixed seed and worker count; workers <= 0
// takes GOMAXPROCS.
func Pricer(mkt mc.Market, cfg mc.Config, workers int) (Report, error) {
	if err := mkt.Validate(); err != nil {
		return Report{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// Keep every shard large enough for its own variance estimate.
	if workers > cfg.Trials/2 {
		workers = cfg.Trials / 2
	}

	bar := progressBar(2 * workers)
	bar.Describe(fmt.Sprintf("pricing %d trials", cfg.Trials))

	pairs, err := fanout(workers, cfg, bar, func(c mc.Config) ([]mc.PayoffPair, error) {
		return mc.Stepwise(mkt, c)
	})
	if err != nil {
		return Report{}, err
	}

	crudeCfg := cfg
	crudeCfg.Trials = 2 * cfg.Trials
	crudeCfg.Seed = cfg.Seed + uint64(workers)
	singles, err := fanout(workers, crudeCfg, bar, func(c mc.Config) ([]float64, error) {
		return mc.Crude(mkt, c)
	})
	if err != nil {
		return Report{}, err
	}

	anti, err := mc.Estimate(pairs, mkt)
	if err != nil {
		return Report{}, err
	}
	crude, err := mc.EstimateSingles(singles, mkt)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Antithetic: anti,
		Crude:      crude,
		Closed:     bs.Call(mkt.S, mkt.K, mkt.Sigma, mkt.R, mkt.T),
	}, nil
}

// fanout shards cfg.Trials across workers goroutines, each simulating its
// share with a derived seed, and concatenates the shards in worker order.
// The outcome does not depend on scheduling.
func fanout[T any](workers int, cfg mc.Config, bar *progressbar.ProgressBar, run func(mc.Config) ([]T, error)) ([]T, error) {
	type shard struct {
		idx int
		out []T
		err error
	}
	per := cfg.Trials / workers
	ch := make(chan shard, workers)
	for w := 0; w < workers; w++ {
		n := per
		if w == workers-1 {
			n = cfg.Trials - per*(workers-1)
		}
		c := mc.Config{Trials: n, Steps: cfg.Steps, Seed: cfg.Seed + uint64(w)}
		go func(idx int, c mc.Config) {
			out, err := run(c)
			ch <- shard{idx: idx, out: out, err: err}
		}(w, c)
	}
	parts := make([][]T, workers)
	for i := 0; i < workers; i++ {
		s := <-ch
		if s.err != nil {
			return nil, s.err
		}
		parts[s.idx] = s.out
		bar.Add(1)
	}
	out := make([]T, 0, cfg.Trials)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
