package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("direction is clamped per axis", func(t *testing.T) {
		origin := Position{Row: 4, Col: 4}

		require.Equal(t, Position{Row: -1, Col: 1}, origin.DirectionTo(Position{Row: 0, Col: 9}))
		require.Equal(t, Position{Row: 0, Col: -1}, origin.DirectionTo(Position{Row: 4, Col: 2}))
		require.Equal(t, Position{Row: 1, Col: 0}, origin.DirectionTo(Position{Row: 7, Col: 4}))
		require.Equal(t, Position{}, origin.DirectionTo(origin))
	})

	t.Run("euclidean distance", func(t *testing.T) {
		require.Equal(t, 5.0, Position{Row: 0, Col: 0}.Distance(Position{Row: 3, Col: 4}))
		require.InDelta(t, math.Sqrt2, Position{Row: 2, Col: 2}.Distance(Position{Row: 1, Col: 1}), 1e-12)
	})

	t.Run("bounds", func(t *testing.T) {
		require.True(t, Position{Row: 0, Col: 0}.InBounds(3, 4))
		require.True(t, Position{Row: 2, Col: 3}.InBounds(3, 4))
		require.False(t, Position{Row: 3, Col: 0}.InBounds(3, 4))
		require.False(t, Position{Row: 0, Col: -1}.InBounds(3, 4))
	})

	t.Run("stepping and reversing", func(t *testing.T) {
		p := Position{Row: 2, Col: 2}
		dir := Position{Row: 1, Col: -1}

		require.Equal(t, Position{Row: 3, Col: 1}, p.Add(dir))
		require.Equal(t, Position{Row: 1, Col: 3}, p.Add(dir.Neg()))
	})
}
