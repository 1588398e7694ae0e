package game

import (
	"fmt"
	"math"
)

// Position is a cell on the grid, addressed by row then column.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// InBounds checks if the position lies on a rows x cols grid
func (p Position) InBounds(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Distance returns the Euclidean distance to another position
func (p Position) Distance(other Position) float64 {
	dr := float64(p.Row - other.Row)
	dc := float64(p.Col - other.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// DirectionTo returns the unit step toward other, each axis clamped to
// {-1, 0, 1} independently.
func (p Position) DirectionTo(other Position) Position {
	return Position{Row: sign(other.Row - p.Row), Col: sign(other.Col - p.Col)}
}

func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

func (p Position) Neg() Position {
	return Position{Row: -p.Row, Col: -p.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
