package engine

import (
	"fmt"
	"time"

	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine plays a whole game in-process. The enemy agent sees a swapped
// board, so any agent written for the Ally side can play either faction.
type LocalEngine struct {
	ID       string
	State    game.State
	Agents   [2]Agent // Ally first, then Enemy
	MaxTurns int
}

func NewLocalEngine(ally, enemy Agent, state game.State, maxTurns int) *LocalEngine {
	if ally == nil || enemy == nil {
		panic("need an agent for each faction")
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &LocalEngine{
		ID:       uuid.NewString(),
		State:    state,
		Agents:   [2]Agent{ally, enemy},
		MaxTurns: maxTurns,
	}
}

// Run executes the game loop until a winner is found, both factions pass in a
// row, or MaxTurns turns (one move per faction each) have been played.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", e.ID).Logger()
	logger.Info().Msgf("starting game on a %dx%d grid", e.State.Rows, e.State.Cols)

	gameMetric := metrics.GameMetric{ID: e.ID, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	step := 0
	passes := 0
	for turn := 1; turn <= e.MaxTurns; turn++ {
		for _, faction := range []game.Faction{game.Ally, game.Enemy} {
			if e.State.IsTerminal() || passes >= 2 {
				break
			}
			step++
			moves, searchMetric := e.play(faction)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Faction:      faction.String(),
				Moves:        moves.String(),
				SearchMetric: searchMetric,
			})
			if moves.IsPass() {
				passes++
			} else {
				passes = 0
			}
			logger.Debug().Msgf("turn %d: %s played %s", turn, faction, moves)
		}
		if e.State.IsTerminal() || passes >= 2 {
			break
		}
	}

	winner := e.State.Winner()
	if winner != "" {
		logger.Info().Msgf("game over after %d moves, winner: %s", step, winner)
	} else {
		logger.Info().Msgf("stopped after %d moves (no winner yet)", step)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	return winner, gameMetric, moveMetrics
}

// play asks the faction's agent for a move set and applies it. Illegal move
// sets are logged and replaced by a pass.
func (e *LocalEngine) play(faction game.Faction) (game.MoveSet, metrics.SearchMetric) {
	view := e.State
	agent := e.Agents[0]
	if faction == game.Enemy {
		view = view.Swap()
		agent = e.Agents[1]
	}

	moves, searchMetric := agent.FindMove(view)
	if faction == game.Enemy {
		moves = moves.Swap()
	}

	err := e.State.CheckMoveSet(moves)
	if err == nil && !moves.IsPass() && moves.Faction() != faction {
		err = fmt.Errorf("move set %s acts for %s: %w", moves, moves.Faction(), game.ErrIllegalMove)
	}
	if err != nil {
		log.Warn().Err(err).Str("game", e.ID).Msgf("%s returned an illegal move set, forcing pass", faction)
		moves = game.Pass
	}
	e.State = e.State.Play(moves)
	return moves, searchMetric
}
