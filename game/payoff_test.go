package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreCompare(t *testing.T) {
	require.Negative(t, Score(-3).Compare(Score(5)))
	require.Positive(t, Score(5).Compare(Score(-3)))
	require.Zero(t, Score(5).Compare(Score(5)))
}

func TestScoreNegate(t *testing.T) {
	t.Run("is an involution", func(t *testing.T) {
		for _, s := range []Score{ScoreMin, -7, 0, 7, ScoreMax} {
			require.Equal(t, s, s.Negate().Negate())
		}
	})

	t.Run("reverses the order", func(t *testing.T) {
		require.Positive(t, Score(-3).Negate().Compare(Score(5).Negate()))
	})

	t.Run("sentinels negate onto each other", func(t *testing.T) {
		require.Equal(t, ScoreMax, ScoreMin.Negate())
		require.Equal(t, ScoreMin, ScoreMax.Negate())
	})
}
