package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB1(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB1(DefaultExploration, 0)
		}, "Should panic when parent has 0 visits")
	})
}

func TestUCB1Evaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB1(DefaultExploration, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(DefaultExploration*DefaultExploration*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + c*sqrt(ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCB1(DefaultExploration, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when child has 0 visits")
	})

	t.Run("zero exploration reduces to win rate", func(t *testing.T) {
		policy := newUCB1(0, 100)
		got := policy.evaluate(7.0, 10)

		require.InDelta(t, 0.7, got, 0.0001,
			"Zero exploration weight should score pure win rate")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		// More parent visits -> higher exploration
		policy1 := newUCB1(DefaultExploration, 100)
		policy2 := newUCB1(DefaultExploration, 1000)

		score1 := policy1.evaluate(5.0, 10)
		score2 := policy2.evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		// More child visits -> lower exploration
		policy := newUCB1(DefaultExploration, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(5.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})
}
