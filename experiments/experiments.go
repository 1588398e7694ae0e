package experiments

import (
	"fmt"

	"skirmish/engine"
	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/searcher"

	"github.com/rs/zerolog/log"
)

// Experiment pits every config against a baseline searcher on one scenario.
type Experiment struct {
	Name      string
	OutputDir string
	Games     int // Per match up
	MaxTurns  int
	Baseline  metrics.AgentConfig
	Configs   []metrics.AgentConfig
}

// RunDepthExperiment plays Games games per config against the baseline,
// swapping seats every other game, and stores the records as CSV. It returns
// the directory the records were written to.
func RunDepthExperiment(state game.State, exp Experiment) (string, error) {
	if exp.Games <= 0 {
		return "", fmt.Errorf("experiment %s needs at least one game per match up", exp.Name)
	}

	// Each matchup pairs the baseline agent against a deeper (or shallower) one
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range exp.Configs {
		matchUps = append(matchUps, []metrics.AgentConfig{exp.Baseline, config})
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range matchUps {
		ally, enemy := matchup[0], matchup[1]
		log.Info().Msgf("starting matchup %d of %d between baseline=%+v and agent=%+v...", mi+1, len(matchUps), ally, enemy)

		for i := 0; i < exp.Games; i++ {
			winner, gameMetric, moveMetrics := runGame(state, ally, enemy, exp.MaxTurns)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Ally:       ally.ID,
				Enemy:      enemy.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
			ally, enemy = enemy, ally
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	return store(exp, gameRecords, moveRecords)
}

func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(append([]metrics.AgentConfig{exp.Baseline}, exp.Configs...))
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return writer.Dir(), nil
}

// runGame executes a single game between two searchers and returns the winner
func runGame(state game.State, ally, enemy metrics.AgentConfig, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(createSearcher(ally), createSearcher(enemy), state, maxTurns)
	return e.Run()
}

func createSearcher(config metrics.AgentConfig) *searcher.AlphaBeta {
	return searcher.NewAlphaBeta(searcher.WithDepth(config.Depth), searcher.WithMetrics())
}
