package searcher

import (
	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/meta"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning. The
// Ally maximizes and the Enemy minimizes; every ply costs one level of depth.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateProximity,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// ChooseMove returns the Ally move set to play on state, searching maxDepth
// plies ahead. A non-positive depth falls back to meta.DEFAULT_DEPTH.
func ChooseMove(state game.State, maxDepth int) game.MoveSet {
	return NewAlphaBeta(WithDepth(maxDepth)).Search(state).Moves
}

// FindMove searches state and reports the metrics of that search.
func (ab *AlphaBeta) FindMove(state game.State) (game.MoveSet, metrics.SearchMetric) {
	result := ab.Search(state)
	return result.Moves, ab.metrics.Complete()
}

func (ab *AlphaBeta) Search(state game.State) Result {
	ab.metrics.Start(ab.depth)
	result := ab.root(state)

	log.Debug().Msgf("searched depth %d: best %s with score %.3f", ab.depth, result.Moves, result.Score)
	return result
}

// root runs the maximizing level itself so it can keep the first move set
// reaching the best score.
func (ab *AlphaBeta) root(state game.State) Result {
	ab.metrics.AddNode()
	if state.IsTerminal() {
		ab.metrics.AddLeaf()
		return Result{Moves: game.Pass, Score: ab.evaluate(state)}
	}

	candidates := state.LegalMoves(game.Ally)
	if len(candidates) == 0 {
		log.Warn().Msg("no legal move for the ally, passing")
		ab.metrics.AddLeaf()
		return Result{Moves: game.Pass, Score: ab.evaluate(state)}
	}

	best := Result{Score: negInf}
	alpha := negInf
	for _, moves := range candidates {
		value := ab.search(state.Play(moves), ab.depth-1, alpha, posInf, false)
		if best.Moves == nil || value > best.Score {
			best = Result{Moves: moves, Score: value}
		}
		alpha = max(alpha, value)
	}
	return best
}

// search returns the minimax value of state, exact whenever it lies strictly
// between alpha and beta.
func (ab *AlphaBeta) search(state game.State, depth int, alpha, beta float64, maximizing bool) float64 {
	ab.metrics.AddNode()
	if depth <= 0 || state.IsTerminal() {
		ab.metrics.AddLeaf()
		return ab.evaluate(state)
	}

	if maximizing {
		candidates := state.LegalMoves(game.Ally)
		if len(candidates) == 0 {
			ab.metrics.AddLeaf()
			return ab.evaluate(state)
		}
		value := negInf
		for _, moves := range candidates {
			value = max(value, ab.search(state.Play(moves), depth-1, alpha, beta, false))
			if value >= beta {
				ab.metrics.AddCutoff()
				break
			}
			alpha = max(alpha, value)
		}
		return value
	}

	candidates := state.LegalMoves(game.Enemy)
	if len(candidates) == 0 {
		ab.metrics.AddLeaf()
		return ab.evaluate(state)
	}
	value := posInf
	for _, moves := range candidates {
		value = min(value, ab.search(state.Play(moves), depth-1, alpha, beta, true))
		beta = min(beta, value)
		if alpha >= value {
			ab.metrics.AddCutoff()
			break
		}
	}
	return value
}
