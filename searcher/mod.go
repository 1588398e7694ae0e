package searcher

import (
	"math"
	"skirmish/game"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Result is the root decision: the move set to play and the minimax score it
// leads to. Moves is a pass when the Ally has nothing to do.
type Result struct {
	Moves game.MoveSet
	Score float64
}
