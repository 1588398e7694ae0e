// Package scenario loads board snapshots from YAML.
package scenario

import (
	"fmt"
	"os"

	"skirmish/game"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a scenario.
//
//	rows: 5
//	cols: 5
//	groups:
//	  - {row: 0, col: 0, ally: 4}
//	  - {row: 4, col: 4, enemy: 3}
type File struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	Groups []GroupEntry `yaml:"groups"`
}

type GroupEntry struct {
	Row     int `yaml:"row"`
	Col     int `yaml:"col"`
	Neutral int `yaml:"neutral"`
	Enemy   int `yaml:"enemy"`
	Ally    int `yaml:"ally"`
}

// Parse decodes a scenario and builds its state through the same validation as
// a live update.
func Parse(data []byte) (game.State, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return game.State{}, fmt.Errorf("decode scenario: %w", err)
	}

	state, err := game.NewState(f.Rows, f.Cols)
	if err != nil {
		return game.State{}, err
	}

	deltas := make([]game.Delta, len(f.Groups))
	for i, g := range f.Groups {
		deltas[i] = game.Delta{
			Position: game.Position{Row: g.Row, Col: g.Col},
			Neutral:  g.Neutral,
			Enemy:    g.Enemy,
			Ally:     g.Ally,
		}
	}
	state, err = game.MergeUpdate(state, deltas)
	if err != nil {
		return game.State{}, err
	}
	return state, nil
}

func Load(path string) (game.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.State{}, err
	}
	state, err := Parse(data)
	if err != nil {
		return game.State{}, fmt.Errorf("%s: %w", path, err)
	}
	return state, nil
}
