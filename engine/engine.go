package engine

import (
	"skirmish/experiments/metrics"
	"skirmish/game"
)

// Agent picks a move set for the Ally side of the state it is given.
type Agent interface {
	FindMove(state game.State) (game.MoveSet, metrics.SearchMetric)
}

type Engine interface {
	// Run plays a game till there's a winner, both sides pass, or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
