package mainfuncs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banachtech/antivar/mc"
)

var scenario = mc.Market{S: 101.15, K: 98.01, Sigma: 0.0991, R: 0.015, T: 0.1644}

func TestReportString(t *testing.T) {
	rep := Report{Antithetic: mc.Result{Price: 3.8342, SE: 0.0301}}
	require.Equal(t, "Call value is $3.83 with SE +/- 0.03", rep.String())
}

func TestPricerScenario(t *testing.T) {
	cfg := mc.Config{Trials: 1000, Steps: 10, Seed: 42}
	rep, err := Pricer(scenario, cfg, 2)
	require.NoError(t, err)

	require.InDelta(t, 3.83, rep.Antithetic.Price, 0.15)
	require.Greater(t, rep.Antithetic.SE, 0.0)
	require.Less(t, rep.Antithetic.SE, 0.05)
	require.InDelta(t, 3.8238, rep.Closed, 1e-4)

	// Crude side runs on the doubled budget yet keeps a larger SE.
	require.Less(t, rep.Antithetic.SE, rep.Crude.SE)
	require.InDelta(t, rep.Closed, rep.Crude.Price, 6*rep.Crude.SE)
}

func TestPricerReproducible(t *testing.T) {
	cfg := mc.Config{Trials: 400, Steps: 5, Seed: 11}
	a, err := Pricer(scenario, cfg, 3)
	require.NoError(t, err)
	b, err := Pricer(scenario, cfg, 3)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestPricerSingleWorkerMatchesSerial(t *testing.T) {
	cfg := mc.Config{Trials: 300, Steps: 4, Seed: 5}
	rep, err := Pricer(scenario, cfg, 1)
	require.NoError(t, err)

	pairs, err := mc.Stepwise(scenario, cfg)
	require.NoError(t, err)
	want, err := mc.Estimate(pairs, scenario)
	require.NoError(t, err)
	require.Equal(t, want, rep.Antithetic)
}

func TestPricerValidates(t *testing.T) {
	bad := mc.Market{S: 0.0, K: 98.01, Sigma: 0.0991, R: 0.015, T: 0.1644}
	_, err := Pricer(bad, mc.Config{Trials: 100, Steps: 1, Seed: 1}, 1)
	require.ErrorIs(t, err, mc.ErrInvalidParameter)

	_, err = Pricer(scenario, mc.Config{Trials: 1, Steps: 1, Seed: 1}, 1)
	require.ErrorIs(t, err, mc.ErrInsufficientSamples)
}

func TestPricerClampsWorkers(t *testing.T) {
	// More workers than shards can hold still prices correctly.
	cfg := mc.Config{Trials: 6, Steps: 2, Seed: 9}
	rep, err := Pricer(scenario, cfg, 64)
	require.NoError(t, err)
	require.Greater(t, rep.Antithetic.Price, 0.0)
}
