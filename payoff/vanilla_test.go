package payoff

import (
	"testing"

	"github.com/banachtech/antivar/util"
	"github.com/stretchr/testify/require"
)

func TestCallPayout(t *testing.T) {
	testCases := []struct {
		name     string
		strike   float64
		terminal float64
		want     float64
	}{
		{name: "in the money", strike: 98.01, terminal: 101.15, want: 3.14},
		{name: "at the money", strike: 100.0, terminal: 100.0, want: 0.0},
		{name: "out of the money", strike: 100.0, terminal: 87.5, want: 0.0},
		{name: "terminal at zero", strike: 100.0, terminal: 0.0, want: 0.0},
		{name: "deep in the money", strike: 10.0, terminal: 1000.0, want: 990.0},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			c := Call{K: test.strike}
			require.InDelta(t, test.want, c.Payout(test.terminal), 1e-12)
		})
	}
}

func TestCallPayoutNonNegative(t *testing.T) {
	for i := 0; i < 1000; i++ {
		c := Call{K: util.RandomFloat(1.0, 200.0)}
		s := util.RandomFloat(0.0, 400.0)
		require.GreaterOrEqual(t, c.Payout(s), 0.0)
	}
}
