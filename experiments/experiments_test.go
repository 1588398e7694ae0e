package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"skirmish/experiments/metrics"
	"skirmish/game"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1
}

func TestRunDepthExperiment(t *testing.T) {
	state, err := game.NewState(5, 5)
	require.NoError(t, err)
	state, err = game.MergeUpdate(state, []game.Delta{
		{Position: game.Position{Row: 0, Col: 0}, Ally: 6},
		{Position: game.Position{Row: 4, Col: 4}, Enemy: 6},
		{Position: game.Position{Row: 2, Col: 2}, Neutral: 2},
	})
	require.NoError(t, err)

	exp := Experiment{
		Name:      "depth",
		OutputDir: t.TempDir(),
		Games:     2,
		MaxTurns:  5,
		Baseline:  metrics.AgentConfig{ID: 0, Depth: 1},
		Configs:   []metrics.AgentConfig{{ID: 1, Depth: 1}, {ID: 2, Depth: 2}},
	}

	dir, err := RunDepthExperiment(state, exp)
	require.NoError(t, err)

	require.Equal(t, 3, countRows(t, filepath.Join(dir, "agent_configs.csv")), "Baseline should be stored with the configs")
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")), "Should play every game of every match up")
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestRunDepthExperimentWithoutGames(t *testing.T) {
	state, err := game.NewState(3, 3)
	require.NoError(t, err)

	_, err = RunDepthExperiment(state, Experiment{Name: "empty", OutputDir: t.TempDir()})
	require.Error(t, err)
}
