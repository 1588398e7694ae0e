package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"skirmish/game"

	"github.com/stretchr/testify/require"
)

const duel = `
rows: 10
cols: 10
groups:
  - {row: 0, col: 0, ally: 10}
  - {row: 0, col: 5, enemy: 3}
  - {row: 4, col: 4, neutral: 2}
`

func TestParse(t *testing.T) {
	state, err := Parse([]byte(duel))
	require.NoError(t, err)

	require.Equal(t, 10, state.Rows)
	require.Equal(t, 10, state.Cols)
	require.Equal(t, []game.Group{{Faction: game.Ally, Position: game.Position{Row: 0, Col: 0}, Count: 10}}, state.Ally)
	require.Equal(t, []game.Group{{Faction: game.Enemy, Position: game.Position{Row: 0, Col: 5}, Count: 3}}, state.Enemy)
	require.Equal(t, []game.Group{{Faction: game.Neutral, Position: game.Position{Row: 4, Col: 4}, Count: 2}}, state.Neutral)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		data string
		err  error
	}{
		"empty grid": {"rows: 0\ncols: 3\n", game.ErrInvalidGrid},
		"off board":  {"rows: 3\ncols: 3\ngroups:\n  - {row: 3, col: 0, ally: 1}\n", game.ErrOutOfBounds},
		"negative":   {"rows: 3\ncols: 3\ngroups:\n  - {row: 1, col: 1, enemy: -2}\n", game.ErrNegativeCount},
		"contested":  {"rows: 3\ncols: 3\ngroups:\n  - {row: 1, col: 1, enemy: 2, ally: 1}\n", game.ErrContestedCell},
		"duplicate":  {"rows: 3\ncols: 3\ngroups:\n  - {row: 1, col: 1, ally: 1}\n  - {row: 1, col: 1, ally: 2}\n", game.ErrDuplicatePosition},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Parse([]byte("rows: [1"))
	require.Error(t, err, "Malformed YAML should fail")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(duel), 0644))

	state, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, state.Population(game.Ally))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
