package game

// Play applies a full move set and returns the successor state. The receiver is
// left untouched, so sibling branches of a search can share it safely.
func (s State) Play(ms MoveSet) State {
	if ms.IsPass() {
		return s.Copy()
	}
	actor := ms.Faction()

	next := State{Rows: s.Rows, Cols: s.Cols}
	for _, f := range []Faction{Ally, Enemy, Neutral} {
		for _, g := range s.Groups(f) {
			if f == actor && isOrigin(ms, g.Position) {
				continue
			}
			next.add(g)
		}
	}

	for _, m := range ms {
		if m.Count <= 0 {
			continue
		}
		occupant, found := next.At(m.To)
		switch {
		case !found:
			next.add(Group{Faction: actor, Position: m.To, Count: m.Count})
		case occupant.Faction == actor:
			// Merge
			next.add(Group{Faction: actor, Position: m.To, Count: m.Count})
		default:
			outcome := ResolveCombat(m.Count, occupant.Count, occupant.Faction == Neutral)
			winner := occupant.Faction
			if outcome.Result == Win {
				winner = actor
				next.remove(occupant.Faction, m.To)
			}
			next.set(Group{Faction: winner, Position: m.To, Count: outcome.Survivors})
		}
	}
	return next
}

func isOrigin(ms MoveSet, pos Position) bool {
	for _, m := range ms {
		if m.From == pos {
			return true
		}
	}
	return false
}

// collection returns a pointer to the slice owned by f. Only used on states
// under construction.
func (s *State) collection(f Faction) *[]Group {
	switch f {
	case Ally:
		return &s.Ally
	case Enemy:
		return &s.Enemy
	default:
		return &s.Neutral
	}
}

// add inserts g, merging it into a same-faction group already at its position.
func (s *State) add(g Group) {
	if g.Count <= 0 {
		return
	}
	groups := s.collection(g.Faction)
	for i := range *groups {
		if (*groups)[i].Position == g.Position {
			(*groups)[i].Count += g.Count
			return
		}
	}
	*groups = append(*groups, g)
}

// set overwrites the count of the group at g's position, inserting or removing
// it as needed.
func (s *State) set(g Group) {
	if g.Count <= 0 {
		s.remove(g.Faction, g.Position)
		return
	}
	groups := s.collection(g.Faction)
	for i := range *groups {
		if (*groups)[i].Position == g.Position {
			(*groups)[i].Count = g.Count
			return
		}
	}
	*groups = append(*groups, g)
}

func (s *State) remove(f Faction, pos Position) {
	groups := s.collection(f)
	for i := range *groups {
		if (*groups)[i].Position == pos {
			*groups = append((*groups)[:i:i], (*groups)[i+1:]...)
			return
		}
	}
}
