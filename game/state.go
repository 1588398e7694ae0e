package game

import "fmt"

// Group is a population of one faction occupying a single cell.
type Group struct {
	Faction  Faction
	Position Position
	Count    int
}

func (g Group) String() string {
	return fmt.Sprintf("%s%s:%d", g.Faction, g.Position, g.Count)
}

// State is a snapshot of the board. It is treated as immutable: Play, Swap and
// MergeUpdate always return a new value and never touch the receiver's slices.
// Within one faction no two groups share a position, and every stored group has
// a positive count.
type State struct {
	Rows    int
	Cols    int
	Ally    []Group
	Enemy   []Group
	Neutral []Group
}

// NewState returns an empty rows x cols board.
func NewState(rows, cols int) (State, error) {
	if rows <= 0 || cols <= 0 {
		return State{}, fmt.Errorf("new state %dx%d: %w", rows, cols, ErrInvalidGrid)
	}
	return State{Rows: rows, Cols: cols}, nil
}

// Groups returns the collection owned by f.
func (s State) Groups(f Faction) []Group {
	switch f {
	case Ally:
		return s.Ally
	case Enemy:
		return s.Enemy
	default:
		return s.Neutral
	}
}

// At returns the group occupying pos, whatever its faction.
func (s State) At(pos Position) (Group, bool) {
	for _, f := range []Faction{Ally, Enemy, Neutral} {
		for _, g := range s.Groups(f) {
			if g.Position == pos {
				return g, true
			}
		}
	}
	return Group{}, false
}

// Population sums the counts of every group owned by f.
func (s State) Population(f Faction) int {
	total := 0
	for _, g := range s.Groups(f) {
		total += g.Count
	}
	return total
}

func (s State) Copy() State {
	return State{
		Rows:    s.Rows,
		Cols:    s.Cols,
		Ally:    append([]Group(nil), s.Ally...),
		Enemy:   append([]Group(nil), s.Enemy...),
		Neutral: append([]Group(nil), s.Neutral...),
	}
}

// Swap exchanges the Ally and Enemy roles so the same searcher can play either side.
func (s State) Swap() State {
	return State{
		Rows:    s.Rows,
		Cols:    s.Cols,
		Ally:    retag(s.Enemy, Ally),
		Enemy:   retag(s.Ally, Enemy),
		Neutral: append([]Group(nil), s.Neutral...),
	}
}

func retag(groups []Group, f Faction) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Faction = f
		out[i] = g
	}
	return out
}

// IsTerminal reports whether one acting faction has been wiped out.
func (s State) IsTerminal() bool {
	return len(s.Ally) == 0 || len(s.Enemy) == 0
}

// Winner returns "A" or "E" once the other side has no groups left, "" otherwise.
func (s State) Winner() string {
	switch {
	case len(s.Ally) == 0 && len(s.Enemy) == 0:
		return ""
	case len(s.Enemy) == 0:
		return Ally.String()
	case len(s.Ally) == 0:
		return Enemy.String()
	default:
		return ""
	}
}
