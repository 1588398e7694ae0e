package game

import (
	"fmt"
	"strings"
)

// Move relocates Count members of the group at From (which held FromCount
// before the move) to the adjacent cell To.
type Move struct {
	Faction   Faction
	From      Position
	FromCount int
	To        Position
	Count     int
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s:%d->%s:%d", m.Faction, m.From, m.FromCount, m.To, m.Count)
}

// MoveSet is one atomic turn for a faction. More than one move means the origin
// group splits. An empty set is a pass.
type MoveSet []Move

var Pass = MoveSet(nil)

func (ms MoveSet) IsPass() bool {
	return len(ms) == 0
}

// Faction returns the acting faction, Neutral for a pass.
func (ms MoveSet) Faction() Faction {
	if ms.IsPass() {
		return Neutral
	}
	return ms[0].Faction
}

// Swap retags every move with the opposing faction, mirroring State.Swap.
func (ms MoveSet) Swap() MoveSet {
	if ms.IsPass() {
		return Pass
	}
	out := make(MoveSet, len(ms))
	for i, m := range ms {
		m.Faction = m.Faction.Opponent()
		out[i] = m
	}
	return out
}

// CheckMoveSet verifies that ms can be played on s: a single origin group of
// the acting faction sends its whole population to neighbouring cells.
func (s State) CheckMoveSet(ms MoveSet) error {
	if ms.IsPass() {
		return nil
	}
	first := ms[0]
	if first.Faction != Ally && first.Faction != Enemy {
		return fmt.Errorf("move set %s: faction %s cannot act: %w", ms, first.Faction, ErrIllegalMove)
	}

	var origin Group
	found := false
	for _, g := range s.Groups(first.Faction) {
		if g.Position == first.From {
			origin, found = g, true
			break
		}
	}
	if !found || origin.Count != first.FromCount {
		return fmt.Errorf("move set %s: no group of %d at %s: %w", ms, first.FromCount, first.From, ErrIllegalMove)
	}

	total := 0
	for _, m := range ms {
		if m.Faction != first.Faction || m.From != first.From || m.FromCount != first.FromCount {
			return fmt.Errorf("move set %s: moves do not share one origin: %w", ms, ErrIllegalMove)
		}
		dir := m.From.DirectionTo(m.To)
		if m.To == m.From || m.From.Add(dir) != m.To || !m.To.InBounds(s.Rows, s.Cols) {
			return fmt.Errorf("move %s: destination is not a neighbouring cell: %w", m, ErrIllegalMove)
		}
		if m.Count <= 0 {
			return fmt.Errorf("move %s: %w", m, ErrIllegalMove)
		}
		total += m.Count
	}
	if total != origin.Count {
		return fmt.Errorf("move set %s: moves %d of %d members: %w", ms, total, origin.Count, ErrIllegalMove)
	}
	return nil
}

func (ms MoveSet) String() string {
	if ms.IsPass() {
		return "pass"
	}
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}
