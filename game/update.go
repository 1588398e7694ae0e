package game

import "fmt"

// Delta is one reported cell: the population of each faction standing on it.
// A cell reported with all three counts at zero is empty.
type Delta struct {
	Position Position
	Neutral  int
	Enemy    int
	Ally     int
}

func (d Delta) count(f Faction) int {
	switch f {
	case Ally:
		return d.Ally
	case Enemy:
		return d.Enemy
	default:
		return d.Neutral
	}
}

func (d Delta) validate(rows, cols int) error {
	if !d.Position.InBounds(rows, cols) {
		return fmt.Errorf("delta at %s on %dx%d grid: %w", d.Position, rows, cols, ErrOutOfBounds)
	}
	if d.Neutral < 0 || d.Enemy < 0 || d.Ally < 0 {
		return fmt.Errorf("delta at %s: %w", d.Position, ErrNegativeCount)
	}
	occupied := 0
	for _, f := range []Faction{Ally, Enemy, Neutral} {
		if d.count(f) > 0 {
			occupied++
		}
	}
	if occupied > 1 {
		return fmt.Errorf("delta at %s: %w", d.Position, ErrContestedCell)
	}
	return nil
}

// MergeUpdate folds an externally reported batch of cells into s. Matching
// groups take the reported count, new cells are appended, and cells reported
// empty lose their group. The whole batch is validated before anything is
// applied, so a rejected batch never yields a partially merged state.
func MergeUpdate(s State, deltas []Delta) (State, error) {
	seen := make(map[Position]struct{}, len(deltas))
	for _, d := range deltas {
		if err := d.validate(s.Rows, s.Cols); err != nil {
			return s, err
		}
		if _, ok := seen[d.Position]; ok {
			return s, fmt.Errorf("delta at %s: %w", d.Position, ErrDuplicatePosition)
		}
		seen[d.Position] = struct{}{}
	}

	next := s.Copy()
	for _, d := range deltas {
		for _, f := range []Faction{Ally, Enemy, Neutral} {
			next.set(Group{Faction: f, Position: d.Position, Count: d.count(f)})
		}
	}
	return next, nil
}
