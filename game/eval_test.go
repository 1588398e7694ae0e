package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateProximity(t *testing.T) {
	t.Run("no allies left", func(t *testing.T) {
		s := board(t, 5, 5, enemy(1, 1, 4))

		require.Equal(t, LossScore, EvaluateProximity(s))
	})

	t.Run("no enemies left", func(t *testing.T) {
		s := board(t, 5, 5, ally(1, 1, 4), neutral(2, 2, 3))

		require.Equal(t, WinScore, EvaluateProximity(s))
	})

	t.Run("single ally facing a single enemy", func(t *testing.T) {
		s := board(t, 10, 10, ally(0, 0, 10), enemy(0, 5, 3))

		expected := math.Exp(-0.5)*10.0/3.0*3.0 + (9 - 2)
		require.InDelta(t, expected, EvaluateProximity(s), 1e-9)
	})

	t.Run("neutral groups count only by proximity", func(t *testing.T) {
		s := board(t, 4, 8, ally(0, 0, 4), ally(3, 3, 2), enemy(0, 4, 2), neutral(3, 0, 8))

		proximity := 0.0
		proximity += math.Exp(-4.0/8) * 4.0 / 2.0 * 3
		proximity += math.Exp(-3.0/8) * 4.0 / 8.0
		proximity += math.Exp(-math.Sqrt(10)/8) * 2.0 / 2.0 * 3
		proximity += math.Exp(-3.0/8) * 2.0 / 8.0
		expected := proximity/2 + float64((3+1)-1)

		require.InDelta(t, expected, EvaluateProximity(s), 1e-9)
	})

	t.Run("closer prey scores higher", func(t *testing.T) {
		far := board(t, 10, 10, ally(0, 0, 10), enemy(9, 9, 3))
		near := board(t, 10, 10, ally(8, 8, 10), enemy(9, 9, 3))

		require.Greater(t, EvaluateProximity(near), EvaluateProximity(far))
	})
}
