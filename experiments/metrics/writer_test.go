package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 0, Depth: 1}, {ID: 1, Depth: 3}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "depth"}, {"0", "1"}, {"1", "3"}}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		record := GameRecord{ID: 7, Ally: 1, Enemy: 0, GameMetric: GameMetric{
			ID:         "game-uuid",
			Winner:     "A",
			StartTime:  start,
			EndTime:    start.Add(2 * time.Second),
			Duration:   2 * time.Second,
			TotalMoves: 12,
		}}
		require.NoError(t, w.WriteGameRecords([]GameRecord{record}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"7", "game-uuid", "1", "0", "A", "2024-05-01T12:00:00Z", "2024-05-01T12:00:02Z", "2s", "12"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		record := MoveRecord{Game: 7, MoveMetric: MoveMetric{
			Step:    3,
			Faction: "E",
			Moves:   "pass",
			SearchMetric: SearchMetric{
				Depth:    2,
				Duration: time.Millisecond,
				Nodes:    40,
				Leaves:   30,
				Cutoffs:  5,
			},
		}}
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{record}))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "faction", "moves", "depth", "duration", "nodes", "leaves", "cutoffs"}, rows[0])
		require.Equal(t, []string{"7", "3", "E", "pass", "2", "1ms", "40", "30", "5"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3)
	c.AddNode()
	c.AddNode()
	c.AddLeaf()
	c.AddCutoff()

	metric := c.Complete()
	require.Equal(t, 3, metric.Depth)
	require.Equal(t, 2, metric.Nodes)
	require.Equal(t, 1, metric.Leaves)
	require.Equal(t, 1, metric.Cutoffs)

	c.Start(1)
	require.Zero(t, c.Complete().Nodes, "Start should reset the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
