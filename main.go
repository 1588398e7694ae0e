package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"skirmish/config"
	"skirmish/engine"
	"skirmish/experiments"
	"skirmish/experiments/metrics"
	"skirmish/scenario"
	"skirmish/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	scenarioPath := flag.String("scenario", "scenarios/duel.yaml", "Path to scenario file")
	mode := flag.String("mode", "choose", "What to run: choose, play or experiment")
	depth := flag.Int("depth", -1, "Search depth (-1 to use config default)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}

	setupLogging(cfg.Log)

	state, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load scenario")
	}
	log.Info().Str("scenario", *scenarioPath).Msgf("loaded %dx%d board", state.Rows, state.Cols)

	switch *mode {
	case "choose":
		ab := searcher.NewAlphaBeta(searcher.WithDepth(cfg.Search.Depth), searcher.WithMetrics())
		moves, metric := ab.FindMove(state)
		log.Info().
			Int("depth", metric.Depth).
			Int("nodes", metric.Nodes).
			Int("cutoffs", metric.Cutoffs).
			Dur("duration", metric.Duration).
			Msg("search complete")
		fmt.Println(moves)

	case "play":
		ally := searcher.NewAlphaBeta(searcher.WithDepth(cfg.Search.Depth), searcher.WithMetrics())
		enemy := searcher.NewAlphaBeta(searcher.WithDepth(cfg.Search.Depth), searcher.WithMetrics())
		e := engine.NewLocalEngine(ally, enemy, state, cfg.Engine.MaxTurns)
		winner, gameMetric, moveMetrics := e.Run()
		for _, mm := range moveMetrics {
			fmt.Printf("%3d %s %s\n", mm.Step, mm.Faction, mm.Moves)
		}
		if winner == "" {
			winner = "none"
		}
		fmt.Printf("winner: %s after %d moves\n", winner, gameMetric.TotalMoves)

	case "experiment":
		exp := experiments.Experiment{
			Name:      cfg.Experiment.Name,
			OutputDir: cfg.Experiment.OutputDir,
			Games:     cfg.Experiment.Games,
			MaxTurns:  cfg.Engine.MaxTurns,
			Baseline:  metrics.AgentConfig{ID: 0, Depth: cfg.Experiment.Baseline},
		}
		for i, d := range cfg.Experiment.Depths {
			exp.Configs = append(exp.Configs, metrics.AgentConfig{ID: i + 1, Depth: d})
		}
		dir, err := experiments.RunDepthExperiment(state, exp)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(dir)

	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
