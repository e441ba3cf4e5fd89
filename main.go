package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/banachtech/antivar/bs"
	"github.com/banachtech/antivar/chart"
	"github.com/banachtech/antivar/mainfuncs"
	"github.com/banachtech/antivar/mc"
	"github.com/banachtech/antivar/util"
)

func main() {
	var (
		spot     = flag.Float64("spot", 101.15, "spot price")
		strike   = flag.Float64("strike", 98.01, "strike")
		vol      = flag.Float64("vol", 0.0991, "annualised volatility")
		rate     = flag.Float64("rate", 0.015, "continuously compounded risk-free rate")
		tenor    = flag.Float64("tenor", 0.1644, "time to maturity in years")
		expiry   = flag.String("expiry", "", "expiry date YYYY-MM-DD, overrides -tenor")
		steps    = flag.Int("steps", 10, "time steps per path")
		trials   = flag.Int("trials", 1000, "antithetic trials")
		seed     = flag.Uint64("seed", 0, "rng seed, 0 draws from the clock")
		workers  = flag.Int("workers", 1, "parallel workers, 0 takes GOMAXPROCS")
		ref      = flag.Float64("ref", 0, "reference market price")
		plotFile = flag.String("plot", "", "write the density comparison figure to this file")
		study    = flag.String("converge", "", "comma separated trial counts for a convergence study")
	)
	flag.Parse()

	mkt := mc.Market{S: *spot, K: *strike, Sigma: *vol, R: *rate, T: *tenor}
	if *expiry != "" {
		e, err := util.ParseDate(*expiry)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		tNow, _ := time.Parse(util.Layout, time.Now().Format(util.Layout))
		mkt.T = util.YearFrac(tNow, e)
	}
	cfg := mc.Config{Trials: *trials, Steps: *steps, Seed: *seed}

	if *study != "" {
		levels, err := parseLevels(*study)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		rows, err := mainfuncs.Convergence(mkt, cfg, levels)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		fmt.Println("trials\tprice\tSE\t|error|")
		for _, lv := range rows {
			fmt.Printf("%d\t%.4f\t%.4f\t%.4f\n", lv.Trials, lv.Price, lv.SE, lv.AbsErr)
		}
		return
	}

	rep, err := mainfuncs.Pricer(mkt, cfg, *workers)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	fmt.Println(rep)
	fmt.Printf("Crude Monte Carlo on the same budget: $%.2f with SE +/- %.2f\n", rep.Crude.Price, rep.Crude.SE)
	fmt.Printf("Black-Scholes closed form: $%.2f\n", rep.Closed)

	if *ref > 0 {
		iv, err := bs.ImpliedVol(*ref, mkt.S, mkt.K, mkt.R, mkt.T)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		fmt.Printf("Market $%.2f implies volatility %.4f\n", *ref, iv)
	}

	if *plotFile != "" {
		target := *ref
		if target <= 0 {
			target = rep.Closed
		}
		if err := chart.Density(rep.Antithetic, rep.Crude, target, *plotFile); err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		fmt.Printf("Wrote %s\n", *plotFile)
	}
}

func parseLevels(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
