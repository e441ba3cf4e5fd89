package mc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarketValidate(t *testing.T) {
	testCases := []struct {
		name string
		mkt  Market
		err  error
	}{
		{name: "valid", mkt: Market{S: 101.15, K: 98.01, Sigma: 0.0991, R: 0.015, T: 0.1644}},
		{name: "negative rate ok", mkt: Market{S: 100.0, K: 100.0, Sigma: 0.2, R: -0.01, T: 1.0}},
		{name: "zero vol ok", mkt: Market{S: 100.0, K: 100.0, Sigma: 0.0, R: 0.05, T: 1.0}},
		{name: "zero spot", mkt: Market{S: 0.0, K: 100.0, Sigma: 0.2, R: 0.05, T: 1.0}, err: ErrInvalidParameter},
		{name: "negative spot", mkt: Market{S: -5.0, K: 100.0, Sigma: 0.2, R: 0.05, T: 1.0}, err: ErrInvalidParameter},
		{name: "zero strike", mkt: Market{S: 100.0, K: 0.0, Sigma: 0.2, R: 0.05, T: 1.0}, err: ErrInvalidParameter},
		{name: "negative vol", mkt: Market{S: 100.0, K: 100.0, Sigma: -0.2, R: 0.05, T: 1.0}, err: ErrInvalidParameter},
		{name: "zero maturity", mkt: Market{S: 100.0, K: 100.0, Sigma: 0.2, R: 0.05, T: 0.0}, err: ErrInvalidParameter},
		{name: "negative maturity", mkt: Market{S: 100.0, K: 100.0, Sigma: 0.2, R: 0.05, T: -1.0}, err: ErrInvalidParameter},
		{name: "nan spot", mkt: Market{S: math.NaN(), K: 100.0, Sigma: 0.2, R: 0.05, T: 1.0}, err: ErrInvalidParameter},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			err := test.mkt.Validate()
			if test.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		err  error
	}{
		{name: "valid", cfg: Config{Trials: 1000, Steps: 10, Seed: 42}},
		{name: "two trials is enough", cfg: Config{Trials: 2, Steps: 1}},
		{name: "one trial", cfg: Config{Trials: 1, Steps: 10}, err: ErrInsufficientSamples},
		{name: "zero trials", cfg: Config{Trials: 0, Steps: 10}, err: ErrInsufficientSamples},
		{name: "zero steps", cfg: Config{Trials: 1000, Steps: 0}, err: ErrInvalidParameter},
		{name: "negative steps", cfg: Config{Trials: 1000, Steps: -3}, err: ErrInvalidParameter},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.err)
		})
	}
}
